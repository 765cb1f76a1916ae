package dlis

import "encoding/binary"

const vrlSize = 4

// VisibleRecord is the 4-byte label that opens each visible record: a
// total length (including this label) and a format/version byte pair.
type VisibleRecord struct {
	Len     int
	Version uint8
}

func parseVRL(buf []byte) (VisibleRecord, error) {
	if len(buf) != vrlSize {
		return VisibleRecord{}, parseErrf(buf, 0, "VRL: expected %d bytes, got %d", vrlSize, len(buf))
	}
	length := int(binary.BigEndian.Uint16(buf[0:2]))
	version := buf[3]
	return VisibleRecord{Len: length, Version: version}, nil
}

// readVRL reads the next 4-byte Visible Record Label from f and warns
// (without failing) if its version isn't 1.
func (f *File) readVRL() (VisibleRecord, error) {
	buf, err := f.readNext(vrlSize)
	if err != nil {
		return VisibleRecord{}, err
	}
	vr, err := parseVRL(buf)
	if err != nil {
		return VisibleRecord{}, err
	}
	f.stats.visibleRecords.Inc()
	if vr.Version != 1 {
		f.warnf("VRL version %d at offset %d, expected 1", vr.Version, f.pos-vrlSize)
	}
	return vr, nil
}
