package dlis

import (
	"strconv"
	"strings"
)

// Layout identifies a Storage Unit Label's declared record layout.
type Layout int

const (
	LayoutUnknown Layout = iota
	LayoutRecord
)

func (l Layout) String() string {
	if l == LayoutRecord {
		return "record"
	}
	return "unknown"
}

// StorageUnitLabel is the fixed 80-byte preamble at file offset 0.
type StorageUnitLabel struct {
	Sequence int
	Major    int
	Minor    int
	Layout   Layout
	MaxLen   int64
	ID       string
}

const sulSize = 80

// ParseSUL decodes an 80-byte Storage Unit Label. buf must be exactly
// sulSize bytes.
func ParseSUL(buf []byte) (StorageUnitLabel, error) {
	if len(buf) != sulSize {
		return StorageUnitLabel{}, parseErrf(buf, 0, "SUL: expected %d bytes, got %d", sulSize, len(buf))
	}

	seqField := strings.TrimSpace(string(buf[0:4]))
	versionField := strings.TrimSpace(string(buf[4:9]))
	structureField := strings.TrimSpace(string(buf[9:15]))
	maxLenField := strings.TrimSpace(string(buf[15:20]))
	idField := strings.TrimRight(string(buf[20:80]), " ")

	seq, err := strconv.Atoi(seqField)
	if err != nil {
		return StorageUnitLabel{}, parseErrf(buf, 0, "SUL: bad sequence number %q: %v", seqField, err)
	}

	major, minor, err := parseSULVersion(versionField)
	if err != nil {
		return StorageUnitLabel{}, parseErrf(buf, 4, "SUL: bad version %q: %v", versionField, err)
	}

	maxLen, err := strconv.ParseInt(maxLenField, 10, 64)
	if err != nil {
		return StorageUnitLabel{}, parseErrf(buf, 15, "SUL: bad max record length %q: %v", maxLenField, err)
	}

	layout := LayoutUnknown
	if strings.EqualFold(structureField, "RECORD") {
		layout = LayoutRecord
	}

	return StorageUnitLabel{
		Sequence: seq,
		Major:    major,
		Minor:    minor,
		Layout:   layout,
		MaxLen:   maxLen,
		ID:       idField,
	}, nil
}

func parseSULVersion(field string) (major, minor int, err error) {
	field = strings.TrimPrefix(strings.ToUpper(field), "V")
	parts := strings.SplitN(field, ".", 2)
	if len(parts) != 2 {
		return 0, 0, &Error{Kind: KindParse, Msg: "version field has no '.'"}
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

// Sul reads and decodes the Storage Unit Label at the start of the file.
func (f *File) Sul() (StorageUnitLabel, error) {
	if f.closed {
		return StorageUnitLabel{}, ErrClosed
	}
	buf, err := f.readAt(0, sulSize)
	if err != nil {
		return StorageUnitLabel{}, err
	}
	return ParseSUL(buf)
}
