package dlis

import (
	"encoding/binary"
	"math"
)

// RepresentationCode identifies one of RP66 V1's 26 primitive value
// encodings, used both as the wire tag inside ATTRIB/ABSATR descriptors and
// as the argument to Cursor's typed readers.
type RepresentationCode uint8

const (
	FSHORT RepresentationCode = iota + 1
	FSINGL
	FSING1
	FSING2
	FDOUBL
	FDOUB1
	FDOUB2
	ISINGL
	VSINGL
	CSINGL
	CDOUBL
	SSHORT
	SNORM
	SLONG
	USHORT
	UNORM
	ULONG
	UVARI
	IDENT
	ASCII
	DTIME
	STATUS
	OBNAME
	OBJREF
	ATTREF
	UNITS
)

func (rc RepresentationCode) String() string {
	switch rc {
	case FSHORT:
		return "FSHORT"
	case FSINGL:
		return "FSINGL"
	case FSING1:
		return "FSING1"
	case FSING2:
		return "FSING2"
	case FDOUBL:
		return "FDOUBL"
	case FDOUB1:
		return "FDOUB1"
	case FDOUB2:
		return "FDOUB2"
	case ISINGL:
		return "ISINGL"
	case VSINGL:
		return "VSINGL"
	case CSINGL:
		return "CSINGL"
	case CDOUBL:
		return "CDOUBL"
	case SSHORT:
		return "SSHORT"
	case SNORM:
		return "SNORM"
	case SLONG:
		return "SLONG"
	case USHORT:
		return "USHORT"
	case UNORM:
		return "UNORM"
	case ULONG:
		return "ULONG"
	case UVARI:
		return "UVARI"
	case IDENT:
		return "IDENT"
	case ASCII:
		return "ASCII"
	case DTIME:
		return "DTIME"
	case STATUS:
		return "STATUS"
	case OBNAME:
		return "OBNAME"
	case OBJREF:
		return "OBJREF"
	case ATTREF:
		return "ATTREF"
	case UNITS:
		return "UNITS"
	default:
		return "UNKNOWN"
	}
}

// Cursor is an immutable read position over a materialised record buffer.
// Every reader method returns the decoded value plus a new Cursor advanced
// past it; the receiver is never mutated, per the cursor-style design this
// package follows instead of a mutating byte-at-a-time decoder.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf for reading, starting at offset 0.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Off reports the cursor's current byte offset into its buffer.
func (c Cursor) Off() int {
	return c.off
}

// Remaining reports how many bytes are left to read.
func (c Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Done reports whether the cursor has consumed the entire buffer.
func (c Cursor) Done() bool {
	return c.Remaining() == 0
}

func (c Cursor) advance(n int) Cursor {
	return Cursor{buf: c.buf, off: c.off + n}
}

// Raw reads the next n bytes verbatim.
func (c Cursor) Raw(n int) ([]byte, Cursor, error) {
	if c.Remaining() < n {
		return nil, c, eofErrf(int64(c.off), "need %d bytes, have %d remaining", n, c.Remaining())
	}
	return c.buf[c.off : c.off+n], c.advance(n), nil
}

// ObjectName is the OBNAME triple: origin reference, copy number, and
// identifier.
type ObjectName struct {
	Origin uint32
	Copy   uint8
	ID     string
}

// ObjectReference is an OBJREF value: an object type tag plus the name of
// the object it refers to.
type ObjectReference struct {
	Type string
	Name ObjectName
}

// AttributeReference is an ATTREF value: an OBJREF plus the label of one of
// that object's attributes.
type AttributeReference struct {
	Type  string
	Name  ObjectName
	Label string
}

// DateTime is a decoded DTIME value.
type DateTime struct {
	Year        int
	TZ          int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

func (c Cursor) UShort() (uint8, Cursor, error) {
	raw, next, err := c.Raw(1)
	if err != nil {
		return 0, c, err
	}
	return raw[0], next, nil
}

func (c Cursor) SShort() (int8, Cursor, error) {
	raw, next, err := c.Raw(1)
	if err != nil {
		return 0, c, err
	}
	return int8(raw[0]), next, nil
}

func (c Cursor) UNorm() (uint16, Cursor, error) {
	raw, next, err := c.Raw(2)
	if err != nil {
		return 0, c, err
	}
	return binary.BigEndian.Uint16(raw), next, nil
}

func (c Cursor) SNorm() (int16, Cursor, error) {
	raw, next, err := c.Raw(2)
	if err != nil {
		return 0, c, err
	}
	return int16(binary.BigEndian.Uint16(raw)), next, nil
}

func (c Cursor) ULong() (uint32, Cursor, error) {
	raw, next, err := c.Raw(4)
	if err != nil {
		return 0, c, err
	}
	return binary.BigEndian.Uint32(raw), next, nil
}

func (c Cursor) SLong() (int32, Cursor, error) {
	raw, next, err := c.Raw(4)
	if err != nil {
		return 0, c, err
	}
	return int32(binary.BigEndian.Uint32(raw)), next, nil
}

// UVari reads a variable-width unsigned integer: the top bits of the first
// byte select a 1, 2, or 4 byte encoding.
func (c Cursor) UVari() (uint32, Cursor, error) {
	raw, next, err := c.Raw(1)
	if err != nil {
		return 0, c, err
	}
	b0 := raw[0]

	switch {
	case b0&0x80 == 0:
		return uint32(b0 & 0x7F), next, nil
	case b0&0x40 == 0:
		raw, next, err := c.Raw(2)
		if err != nil {
			return 0, c, err
		}
		v := binary.BigEndian.Uint16(raw)
		return uint32(v & 0x3FFF), next, nil
	default:
		raw, next, err := c.Raw(4)
		if err != nil {
			return 0, c, err
		}
		v := binary.BigEndian.Uint32(raw)
		return v & 0x3FFFFFFF, next, nil
	}
}

// Ident reads a 1-byte length prefix followed by that many bytes of
// restricted-ASCII text.
func (c Cursor) Ident() (string, Cursor, error) {
	n, next, err := c.UShort()
	if err != nil {
		return "", c, err
	}
	raw, next, err := next.Raw(int(n))
	if err != nil {
		return "", c, err
	}
	return string(raw), next, nil
}

// Units reads an IDENT subject to the units-string constraints; the wire
// encoding is identical to IDENT.
func (c Cursor) Units() (string, Cursor, error) {
	return c.Ident()
}

// Ascii reads a UVARI length prefix followed by that many bytes of text.
func (c Cursor) Ascii() (string, Cursor, error) {
	n, next, err := c.UVari()
	if err != nil {
		return "", c, err
	}
	raw, next, err := next.Raw(int(n))
	if err != nil {
		return "", c, err
	}
	return string(raw), next, nil
}

// Status reads a single byte constrained to 0 or 1.
func (c Cursor) Status() (bool, Cursor, error) {
	raw, next, err := c.Raw(1)
	if err != nil {
		return false, c, err
	}
	switch raw[0] {
	case 0:
		return false, next, nil
	case 1:
		return true, next, nil
	default:
		return false, c, parseErrf(raw, int64(c.off), "STATUS byte must be 0 or 1, got %d", raw[0])
	}
}

// DTime reads an 8-byte DTIME value.
func (c Cursor) DTime() (DateTime, Cursor, error) {
	raw, next, err := c.Raw(8)
	if err != nil {
		return DateTime{}, c, err
	}
	return DateTime{
		Year:        1900 + int(raw[0]),
		TZ:          int(raw[1] >> 4),
		Month:       int(raw[1] & 0x0F),
		Day:         int(raw[2]),
		Hour:        int(raw[3]),
		Minute:      int(raw[4]),
		Second:      int(raw[5]),
		Millisecond: int(binary.BigEndian.Uint16(raw[6:8])),
	}, next, nil
}

// OName reads an OBNAME: a UVARI origin reference, a USHORT copy number,
// and an IDENT identifier.
func (c Cursor) OName() (ObjectName, Cursor, error) {
	origin, next, err := c.UVari()
	if err != nil {
		return ObjectName{}, c, err
	}
	copyNum, next, err := next.UShort()
	if err != nil {
		return ObjectName{}, c, err
	}
	id, next, err := next.Ident()
	if err != nil {
		return ObjectName{}, c, err
	}
	return ObjectName{Origin: origin, Copy: copyNum, ID: id}, next, nil
}

// ORef reads an OBJREF: an IDENT object type followed by an OBNAME.
func (c Cursor) ORef() (ObjectReference, Cursor, error) {
	typ, next, err := c.Ident()
	if err != nil {
		return ObjectReference{}, c, err
	}
	name, next, err := next.OName()
	if err != nil {
		return ObjectReference{}, c, err
	}
	return ObjectReference{Type: typ, Name: name}, next, nil
}

// ARef reads an ATTREF: an OBJREF followed by an IDENT attribute label.
func (c Cursor) ARef() (AttributeReference, Cursor, error) {
	ref, next, err := c.ORef()
	if err != nil {
		return AttributeReference{}, c, err
	}
	label, next, err := next.Ident()
	if err != nil {
		return AttributeReference{}, c, err
	}
	return AttributeReference{Type: ref.Type, Name: ref.Name, Label: label}, next, nil
}

// FSingl reads a big-endian IEEE-754 32-bit float.
func (c Cursor) FSingl() (float32, Cursor, error) {
	raw, next, err := c.Raw(4)
	if err != nil {
		return 0, c, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(raw)), next, nil
}

// FDoubl reads a big-endian IEEE-754 64-bit float.
func (c Cursor) FDoubl() (float64, Cursor, error) {
	raw, next, err := c.Raw(8)
	if err != nil {
		return 0, c, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(raw)), next, nil
}

// FShort reads RP66's 16-bit legacy float: a sign bit, an 11-bit fraction,
// and a 4-bit exponent, packed as a 12-bit two's-complement mantissa
// followed by a 4-bit two's-complement exponent.
func (c Cursor) FShort() (float32, Cursor, error) {
	raw, next, err := c.Raw(2)
	if err != nil {
		return 0, c, err
	}
	v := binary.BigEndian.Uint16(raw)

	mantissa := int32(v >> 4)
	if mantissa >= 0x0800 {
		mantissa -= 0x1000
	}
	exponent := int32(v & 0x000F)
	if exponent >= 0x0008 {
		exponent -= 0x10
	}

	return float32(float64(mantissa) * math.Pow(2, float64(exponent-11))), next, nil
}

// FSing1 reads a (value, deviation) pair of FSINGL values.
func (c Cursor) FSing1() ([2]float32, Cursor, error) {
	var out [2]float32
	next := c
	for i := range out {
		var err error
		out[i], next, err = next.FSingl()
		if err != nil {
			return out, c, err
		}
	}
	return out, next, nil
}

// FSing2 reads a (value, min, max) triple of FSINGL values.
func (c Cursor) FSing2() ([3]float32, Cursor, error) {
	var out [3]float32
	next := c
	for i := range out {
		var err error
		out[i], next, err = next.FSingl()
		if err != nil {
			return out, c, err
		}
	}
	return out, next, nil
}

// FDoub1 reads a (value, deviation) pair of FDOUBL values.
func (c Cursor) FDoub1() ([2]float64, Cursor, error) {
	var out [2]float64
	next := c
	for i := range out {
		var err error
		out[i], next, err = next.FDoubl()
		if err != nil {
			return out, c, err
		}
	}
	return out, next, nil
}

// FDoub2 reads a (value, min, max) triple of FDOUBL values.
func (c Cursor) FDoub2() ([3]float64, Cursor, error) {
	var out [3]float64
	next := c
	for i := range out {
		var err error
		out[i], next, err = next.FDoubl()
		if err != nil {
			return out, c, err
		}
	}
	return out, next, nil
}

// Complex32 is a (real, imaginary) pair of float32s, decoded from CSINGL.
type Complex32 struct {
	Real, Imag float32
}

// Complex64 is a (real, imaginary) pair of float64s, decoded from CDOUBL.
type Complex64 struct {
	Real, Imag float64
}

func (c Cursor) CSingl() (Complex32, Cursor, error) {
	re, next, err := c.FSingl()
	if err != nil {
		return Complex32{}, c, err
	}
	im, next, err := next.FSingl()
	if err != nil {
		return Complex32{}, c, err
	}
	return Complex32{Real: re, Imag: im}, next, nil
}

func (c Cursor) CDoubl() (Complex64, Cursor, error) {
	re, next, err := c.FDoubl()
	if err != nil {
		return Complex64{}, c, err
	}
	im, next, err := next.FDoubl()
	if err != nil {
		return Complex64{}, c, err
	}
	return Complex64{Real: re, Imag: im}, next, nil
}

// ISingl reads a 32-bit IBM hexadecimal float: sign bit, 7-bit base-16
// exponent (excess 64), 24-bit fraction.
func (c Cursor) ISingl() (float32, Cursor, error) {
	raw, next, err := c.Raw(4)
	if err != nil {
		return 0, c, err
	}
	v := binary.BigEndian.Uint32(raw)

	sign := v&0x80000000 != 0
	exponent := int32((v>>24)&0x7F) - 64
	fraction := float64(v&0x00FFFFFF) / float64(0x1000000)

	value := fraction * math.Pow(16, float64(exponent))
	if sign {
		value = -value
	}
	return float32(value), next, nil
}

// VSingl reads a 32-bit VAX F-floating value: the two 16-bit words are
// stored in wire order (unlike IEEE, the low-order word carrying the
// fraction's tail comes first); the field layout otherwise mirrors IEEE-754
// single precision with a bias-128 exponent.
func (c Cursor) VSingl() (float32, Cursor, error) {
	raw, next, err := c.Raw(4)
	if err != nil {
		return 0, c, err
	}
	lo := binary.BigEndian.Uint16(raw[0:2])
	hi := binary.BigEndian.Uint16(raw[2:4])
	v := uint32(hi)<<16 | uint32(lo)

	if v == 0 {
		return 0, next, nil
	}

	sign := v&0x80000000 != 0
	exponent := int32((v>>23)&0xFF) - 128
	fraction := 1.0 + float64(v&0x007FFFFF)/float64(0x800000)

	value := fraction * math.Pow(2, float64(exponent))
	if sign {
		value = -value
	}
	return float32(value), next, nil
}
