package dlis

import "encoding/binary"

const lrshSize = 4

// SegmentAttributes unpacks an LRSH's 8-bit attribute byte into named
// flags, MSB to LSB, instead of exposing the raw byte.
type SegmentAttributes struct {
	ExplicitFormatting  bool
	HasPredecessor      bool
	HasSuccessor        bool
	IsEncrypted         bool
	HasEncryptionPacket bool
	HasChecksum         bool
	HasTrailingLength   bool
	HasPadding          bool
}

func parseSegmentAttributes(b byte) SegmentAttributes {
	return SegmentAttributes{
		ExplicitFormatting:  b&0x80 != 0,
		HasPredecessor:      b&0x40 != 0,
		HasSuccessor:        b&0x20 != 0,
		IsEncrypted:         b&0x10 != 0,
		HasEncryptionPacket: b&0x08 != 0,
		HasChecksum:         b&0x04 != 0,
		HasTrailingLength:   b&0x02 != 0,
		HasPadding:          b&0x01 != 0,
	}
}

// LogicalRecordSegment is one LRSH: a 4-byte header giving the segment's
// total length (including this header), its attribute flags, and its
// record type.
type LogicalRecordSegment struct {
	Len   int
	Attrs SegmentAttributes
	Type  uint8
}

func parseLRSH(buf []byte) (LogicalRecordSegment, error) {
	if len(buf) != lrshSize {
		return LogicalRecordSegment{}, parseErrf(buf, 0, "LRSH: expected %d bytes, got %d", lrshSize, len(buf))
	}
	length := int(binary.BigEndian.Uint16(buf[0:2]))
	attrs := parseSegmentAttributes(buf[2])
	typ := buf[3]
	return LogicalRecordSegment{Len: length, Attrs: attrs, Type: typ}, nil
}

// readLRSH reads the next 4-byte Logical Record Segment Header from f.
func (f *File) readLRSH() (LogicalRecordSegment, error) {
	buf, err := f.readNext(lrshSize)
	if err != nil {
		return LogicalRecordSegment{}, err
	}
	seg, err := parseLRSH(buf)
	if err != nil {
		return LogicalRecordSegment{}, err
	}
	if seg.Len < lrshSize {
		return LogicalRecordSegment{}, parseErrf(buf, f.pos-int64(lrshSize), "LRSH: segment length %d smaller than header", seg.Len)
	}
	f.stats.segments.Inc()
	return seg, nil
}
