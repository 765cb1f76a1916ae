package dlis

// Record materialises the logical record identified by bm: it concatenates
// the bodies of all of the record's segments into one contiguous buffer,
// stripping each segment's trailing-length, checksum, and padding suffixes
// in that reverse-of-wire order.
//
// Encrypted segments are not decoded; their raw (ciphertext) bytes are
// returned as-is, leaving it to the caller to decide what to do with them.
func (f *File) Record(bm Bookmark) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}

	f.pos = bm.Position
	residual := bm.Residual
	buf := f.pools.get()

	for {
		if residual == 0 {
			vrl, err := f.readVRL()
			if err != nil {
				return nil, err
			}
			residual = vrl.Len - vrlSize
			continue
		}

		segPos := f.pos
		seg, err := f.readLRSH()
		if err != nil {
			return nil, err
		}
		residual -= seg.Len
		if residual < 0 {
			return nil, parseErrf(nil, segPos, "segment overrun: residual went negative by %d", -residual)
		}

		body, err := f.readNext(seg.Len - lrshSize)
		if err != nil {
			return nil, err
		}
		body, err = stripSegmentSuffixes(body, seg.Attrs)
		if err != nil {
			return nil, err
		}
		buf = append(buf, body...)

		if !seg.Attrs.HasSuccessor {
			f.stats.bytesMaterialised.Add(int64(len(buf)))
			return buf, nil
		}
	}
}

// stripSegmentSuffixes removes a segment body's trailing-length, checksum,
// and padding suffixes, in that order, matching the wire layout in which
// padding is innermost and trailing-length is outermost.
func stripSegmentSuffixes(body []byte, attrs SegmentAttributes) ([]byte, error) {
	if attrs.HasTrailingLength {
		if len(body) < 2 {
			return nil, parseErrf(body, 0, "segment body too short for trailing length suffix")
		}
		body = body[:len(body)-2]
	}
	if attrs.HasChecksum {
		if len(body) < 2 {
			return nil, parseErrf(body, 0, "segment body too short for checksum suffix")
		}
		body = body[:len(body)-2]
	}
	if attrs.HasPadding {
		if len(body) < 1 {
			return nil, parseErrf(body, 0, "segment body too short for padding suffix")
		}
		padCount := int(body[len(body)-1])
		if padCount > len(body) {
			return nil, parseErrf(body, 0, "padding count %d exceeds remaining body of %d bytes", padCount, len(body))
		}
		body = body[:len(body)-padCount]
	}
	return body, nil
}
