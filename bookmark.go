package dlis

// Bookmark is a stable reopen descriptor for one logical record: the file
// offset of its first segment, the number of bytes left in the enclosing
// visible record at that point, and whether the record used explicit
// formatting. Bookmarks are plain values — safe to store, compare, and
// reopen against an unchanged file.
type Bookmark struct {
	Position    int64
	Residual    int
	IsExplicit  bool
	IsEncrypted bool
}

// Mark walks forward from the current cursor position, indexing exactly
// one logical record without materialising its body, and returns a
// Bookmark for it plus the residual to pass to the next Mark call.
//
// residual is the value returned by the previous Mark call, or 0 to start
// indexing from a position that sits exactly at a VRL (such as right after
// Sul).
func (f *File) Mark(residual int) (Bookmark, int, error) {
	if f.closed {
		return Bookmark{}, 0, ErrClosed
	}

	bm := Bookmark{Position: f.pos, Residual: residual}
	first := true

	for {
		if residual == 0 {
			vrl, err := f.readVRL()
			if err != nil {
				return Bookmark{}, 0, err
			}
			residual = vrl.Len - vrlSize
			continue
		}

		segPos := f.pos
		seg, err := f.readLRSH()
		if err != nil {
			return Bookmark{}, 0, err
		}
		residual -= seg.Len
		if residual < 0 {
			return Bookmark{}, 0, parseErrf(nil, segPos, "segment overrun: residual went negative by %d", -residual)
		}

		if first {
			bm.IsExplicit = seg.Attrs.ExplicitFormatting
			bm.IsEncrypted = seg.Attrs.IsEncrypted
			first = false
		}

		f.skip(seg.Len - lrshSize)

		if !seg.Attrs.HasSuccessor {
			return bm, residual, nil
		}
	}
}
