package dlis

import (
	"fmt"
	"strings"
	"testing"
)

func buildSUL(seq, version, structure, maxLen, id string) []byte {
	field := func(s string, n int) string {
		if len(s) > n {
			s = s[:n]
		}
		return s + strings.Repeat(" ", n-len(s))
	}
	buf := field(seq, 4) + field(version, 5) + field(structure, 6) + field(maxLen, 5) + field(id, 60)
	return []byte(buf)
}

func TestParseSUL(t *testing.T) {
	buf := buildSUL("1", "V1.00", "RECORD", "8192", "MY-WELL-LOG-ID")
	sul, err := ParseSUL(buf)
	if err != nil {
		t.Fatalf("ParseSUL error: %v", err)
	}
	if sul.Sequence != 1 || sul.Major != 1 || sul.Minor != 0 {
		t.Fatalf("sequence/version = %+v", sul)
	}
	if sul.Layout != LayoutRecord {
		t.Fatalf("Layout = %v, wanted LayoutRecord", sul.Layout)
	}
	if sul.MaxLen != 8192 {
		t.Fatalf("MaxLen = %d, wanted 8192", sul.MaxLen)
	}
	if sul.ID != "MY-WELL-LOG-ID" {
		t.Fatalf("ID = %q, wanted trimmed", sul.ID)
	}
}

func TestParseSUL_UnknownLayout(t *testing.T) {
	buf := buildSUL("1", "V1.00", "BOGUS ", "8192", "X")
	sul, err := ParseSUL(buf)
	if err != nil {
		t.Fatalf("ParseSUL error: %v", err)
	}
	if sul.Layout != LayoutUnknown {
		t.Fatalf("Layout = %v, wanted LayoutUnknown", sul.Layout)
	}
}

func TestParseSUL_WrongSize(t *testing.T) {
	if _, err := ParseSUL(make([]byte, 79)); err == nil {
		t.Fatalf("expected error for 79-byte buffer")
	}
}

func TestParseSUL_BadVersion(t *testing.T) {
	buf := buildSUL("1", "X1.00", "RECORD", "8192", "X")
	if _, err := ParseSUL(buf); err == nil {
		t.Fatalf("expected error for malformed version field")
	}
}

func TestFile_Sul(t *testing.T) {
	sulBuf := buildSUL("1", "V1.00", "RECORD", "8192", "WELL-A")
	f := newTestFile(sulBuf)
	sul, err := f.Sul()
	if err != nil {
		t.Fatalf("Sul error: %v", err)
	}
	if sul.ID != "WELL-A" {
		t.Fatalf("ID = %q, wanted WELL-A", sul.ID)
	}
}

func ExampleParseSUL() {
	buf := buildSUL("1", "V1.00", "RECORD", "8192", "EXAMPLE")
	sul, _ := ParseSUL(buf)
	fmt.Println(sul.Layout, sul.Major, sul.Minor)
	// Output: record 1 0
}
