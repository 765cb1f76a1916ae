package dlis

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestCursor_FixedWidthIntegers(t *testing.T) {
	buf := []byte{0xFF, 0x01, 0x02, 0x80, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}
	c := NewCursor(buf)

	us, c, err := c.UShort()
	if err != nil || us != 0xFF {
		t.Fatalf("UShort = (%d, %v), wanted (255, nil)", us, err)
	}
	un, c, err := c.UNorm()
	if err != nil || un != 0x0102 {
		t.Fatalf("UNorm = (%d, %v), wanted (0x0102, nil)", un, err)
	}
	ul, c, err := c.ULong()
	if err != nil || ul != 0x80010000 {
		t.Fatalf("ULong = (%#x, %v), wanted (0x80010000, nil)", ul, err)
	}
	sl, _, err := c.SLong()
	if err != nil || sl != 1 {
		t.Fatalf("SLong = (%d, %v), wanted (1, nil)", sl, err)
	}
}

func TestCursor_UVari(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want uint32
		n    int
	}{
		{"1 byte", []byte{0x42}, 0x42, 1},
		{"2 byte", []byte{0x81, 0x2C}, 0x012C, 2},
		{"4 byte", []byte{0xC0, 0x00, 0x01, 0x2C}, 0x012C, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, next, err := NewCursor(tc.buf).UVari()
			if err != nil {
				t.Fatalf("UVari(%x) error: %v", tc.buf, err)
			}
			if v != tc.want {
				t.Fatalf("UVari(%x) = %d, wanted %d", tc.buf, v, tc.want)
			}
			if next.Off() != tc.n {
				t.Fatalf("UVari(%x) consumed %d bytes, wanted %d", tc.buf, next.Off(), tc.n)
			}
		})
	}
}

func TestCursor_IdentAndAscii(t *testing.T) {
	buf := append([]byte{3}, []byte("FOO")...)
	s, next, err := NewCursor(buf).Ident()
	if err != nil || s != "FOO" || !next.Done() {
		t.Fatalf("Ident = (%q, %v), done=%v, wanted (FOO, nil, true)", s, err, next.Done())
	}

	asciiBuf := append([]byte{5}, []byte("HELLO")...)
	s, next, err = NewCursor(asciiBuf).Ascii()
	if err != nil || s != "HELLO" || !next.Done() {
		t.Fatalf("Ascii = (%q, %v), wanted (HELLO, nil)", s, err)
	}
}

func TestCursor_Status(t *testing.T) {
	ok, _, err := NewCursor([]byte{1}).Status()
	if err != nil || !ok {
		t.Fatalf("Status(1) = (%v, %v), wanted (true, nil)", ok, err)
	}
	ok, _, err = NewCursor([]byte{0}).Status()
	if err != nil || ok {
		t.Fatalf("Status(0) = (%v, %v), wanted (false, nil)", ok, err)
	}
	_, _, err = NewCursor([]byte{2}).Status()
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindParse {
		t.Fatalf("Status(2) error = %v, wanted KindParse", err)
	}
}

func TestCursor_DTime(t *testing.T) {
	buf := []byte{124, 0x35, 15, 10, 30, 45, 0x01, 0xF4} // year 2024, TZ 3, month 5
	dt, next, err := NewCursor(buf).DTime()
	if err != nil {
		t.Fatalf("DTime error: %v", err)
	}
	want := DateTime{Year: 2024, TZ: 3, Month: 5, Day: 15, Hour: 10, Minute: 30, Second: 45, Millisecond: 0x01F4}
	if dt != want {
		t.Fatalf("DTime = %+v, wanted %+v", dt, want)
	}
	if !next.Done() {
		t.Fatalf("DTime left %d bytes unconsumed", next.Remaining())
	}
}

func TestCursor_OName(t *testing.T) {
	buf := append([]byte{0x02, 0x07}, append([]byte{3}, []byte("FOO")...)...)
	name, next, err := NewCursor(buf).OName()
	if err != nil {
		t.Fatalf("OName error: %v", err)
	}
	want := ObjectName{Origin: 2, Copy: 7, ID: "FOO"}
	if name != want {
		t.Fatalf("OName = %+v, wanted %+v", name, want)
	}
	if !next.Done() {
		t.Fatalf("OName left %d bytes unconsumed", next.Remaining())
	}
}

func TestCursor_ORefAndARef(t *testing.T) {
	objName := append([]byte{0x01, 0x00}, append([]byte{3}, []byte("FOO")...)...)
	typ := append([]byte{4}, []byte("AXIS")...)
	buf := append(typ, objName...)

	ref, next, err := NewCursor(buf).ORef()
	if err != nil {
		t.Fatalf("ORef error: %v", err)
	}
	if ref.Type != "AXIS" || ref.Name.ID != "FOO" {
		t.Fatalf("ORef = %+v, wanted Type=AXIS Name.ID=FOO", ref)
	}
	if !next.Done() {
		t.Fatalf("ORef left %d bytes unconsumed", next.Remaining())
	}

	label := append([]byte{5}, []byte("LABEL")...)
	buf2 := append(append([]byte{}, buf...), label...)
	aref, next, err := NewCursor(buf2).ARef()
	if err != nil {
		t.Fatalf("ARef error: %v", err)
	}
	if aref.Label != "LABEL" {
		t.Fatalf("ARef.Label = %q, wanted LABEL", aref.Label)
	}
	if !next.Done() {
		t.Fatalf("ARef left %d bytes unconsumed", next.Remaining())
	}
}

func TestCursor_Floats(t *testing.T) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], 0x3F800000) // 1.0
	v, _, err := NewCursor(buf[:]).FSingl()
	if err != nil || v != 1.0 {
		t.Fatalf("FSingl = (%v, %v), wanted (1.0, nil)", v, err)
	}

	var dbuf [8]byte
	binary.BigEndian.PutUint64(dbuf[:], 0x3FF0000000000000) // 1.0
	dv, _, err := NewCursor(dbuf[:]).FDoubl()
	if err != nil || dv != 1.0 {
		t.Fatalf("FDoubl = (%v, %v), wanted (1.0, nil)", dv, err)
	}

	// FSHORT zero mantissa should decode to zero regardless of exponent.
	fv, _, err := NewCursor([]byte{0x00, 0x00}).FShort()
	if err != nil || fv != 0 {
		t.Fatalf("FShort(zero) = (%v, %v), wanted (0, nil)", fv, err)
	}
}

func TestCursor_FSing1AndFSing2(t *testing.T) {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:4], 0x3F800000)  // 1.0
	binary.BigEndian.PutUint32(buf[4:8], 0x40000000)  // 2.0
	binary.BigEndian.PutUint32(buf[8:12], 0x40400000) // 3.0

	pair, _, err := NewCursor(buf[:8]).FSing1()
	if err != nil || pair != [2]float32{1.0, 2.0} {
		t.Fatalf("FSing1 = (%v, %v), wanted ([1 2], nil)", pair, err)
	}

	triple, _, err := NewCursor(buf[:]).FSing2()
	if err != nil || triple != [3]float32{1.0, 2.0, 3.0} {
		t.Fatalf("FSing2 = (%v, %v), wanted ([1 2 3], nil)", triple, err)
	}
}

func TestCursor_ComplexValues(t *testing.T) {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], 0x3F800000) // 1.0
	binary.BigEndian.PutUint32(buf[4:8], 0x40000000) // 2.0

	c, _, err := NewCursor(buf[:]).CSingl()
	if err != nil || c != (Complex32{Real: 1.0, Imag: 2.0}) {
		t.Fatalf("CSingl = (%+v, %v), wanted ({1 2}, nil)", c, err)
	}
}

func TestCursor_Raw_ShortBuffer(t *testing.T) {
	_, _, err := NewCursor([]byte{1, 2}).Raw(3)
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindEOF {
		t.Fatalf("Raw short read error = %v, wanted KindEOF", err)
	}
}

func TestCursor_IdentTruncated(t *testing.T) {
	_, _, err := NewCursor([]byte{5, 'a', 'b'}).Ident()
	if err == nil {
		t.Fatalf("Ident with truncated payload should fail")
	}
}
