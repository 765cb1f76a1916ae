package dlis

// decodeValue reads one value of the given representation code.
func decodeValue(c Cursor, reprc RepresentationCode) (any, Cursor, error) {
	switch reprc {
	case FSHORT:
		return chain(c, Cursor.FShort)
	case FSINGL:
		return chain(c, Cursor.FSingl)
	case FSING1:
		return chain(c, Cursor.FSing1)
	case FSING2:
		return chain(c, Cursor.FSing2)
	case FDOUBL:
		return chain(c, Cursor.FDoubl)
	case FDOUB1:
		return chain(c, Cursor.FDoub1)
	case FDOUB2:
		return chain(c, Cursor.FDoub2)
	case ISINGL:
		return chain(c, Cursor.ISingl)
	case VSINGL:
		return chain(c, Cursor.VSingl)
	case CSINGL:
		return chain(c, Cursor.CSingl)
	case CDOUBL:
		return chain(c, Cursor.CDoubl)
	case SSHORT:
		return chain(c, Cursor.SShort)
	case SNORM:
		return chain(c, Cursor.SNorm)
	case SLONG:
		return chain(c, Cursor.SLong)
	case USHORT:
		return chain(c, Cursor.UShort)
	case UNORM:
		return chain(c, Cursor.UNorm)
	case ULONG:
		return chain(c, Cursor.ULong)
	case UVARI:
		return chain(c, Cursor.UVari)
	case IDENT:
		return chain(c, Cursor.Ident)
	case ASCII:
		return chain(c, Cursor.Ascii)
	case UNITS:
		return chain(c, Cursor.Units)
	case DTIME:
		return chain(c, Cursor.DTime)
	case STATUS:
		return chain(c, Cursor.Status)
	case OBNAME:
		return chain(c, Cursor.OName)
	case OBJREF:
		return chain(c, Cursor.ORef)
	case ATTREF:
		return chain(c, Cursor.ARef)
	default:
		return nil, c, parseErrf(nil, int64(c.Off()), "unknown representation code %d", reprc)
	}
}

// chain adapts one of Cursor's typed reader methods (value T, Cursor, error)
// to decodeValue's (any, Cursor, error) signature.
func chain[T any](c Cursor, read func(Cursor) (T, Cursor, error)) (any, Cursor, error) {
	v, next, err := read(c)
	if err != nil {
		return nil, c, err
	}
	return v, next, nil
}

func decodeValues(c Cursor, reprc RepresentationCode, count uint32) ([]any, Cursor, error) {
	out := make([]any, 0, count)
	for i := uint32(0); i < count; i++ {
		v, next, err := decodeValue(c, reprc)
		if err != nil {
			return nil, c, err
		}
		out = append(out, v)
		c = next
	}
	return out, c, nil
}

// DecodeEflr parses a materialised logical record buffer as an Explicitly
// Formatted Logical Record.
func DecodeEflr(buf []byte, warnf func(format string, args ...any)) (*EflrRecord, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	c := NewCursor(buf)
	rec := &EflrRecord{}

	// Phase 1: set header.
	db, c, err := readDescriptor(c)
	if err != nil {
		return nil, err
	}
	switch db.role {
	case roleSet, roleRDSet, roleRSet:
	default:
		return nil, parseErrf(buf, int64(c.Off()), "expected set, got role %s", db.role)
	}
	if db.typePresent() {
		rec.Type, c, err = c.Ident()
		if err != nil {
			return nil, err
		}
		rec.HasType = true
	}
	if db.namePresent() {
		rec.Name, c, err = c.Ident()
		if err != nil {
			return nil, err
		}
		rec.HasName = true
	}

	// Phase 2: template.
	for {
		var peek descriptor
		peek, _, err = readDescriptor(c)
		if err != nil {
			return nil, err
		}
		if peek.role == roleObject {
			break
		}
		if peek.role != roleAttrib && peek.role != roleInvatr {
			return nil, parseErrf(buf, int64(c.Off()), "unexpected role in template: %s", peek.role)
		}

		var col AttributeColumn
		col, c, err = readTemplateColumn(c)
		if err != nil {
			return nil, err
		}
		if peek.role == roleInvatr {
			rec.Template.Invariant = append(rec.Template.Invariant, col)
		} else {
			rec.Template.Attribute = append(rec.Template.Attribute, col)
		}
	}

	// Phase 3: objects.
	for !c.Done() {
		var db descriptor
		db, c, err = readDescriptor(c)
		if err != nil {
			return nil, err
		}
		if db.role != roleObject {
			return nil, parseErrf(buf, int64(c.Off()), "expected object, got role %s", db.role)
		}

		var name ObjectName
		name, c, err = c.OName()
		if err != nil {
			return nil, err
		}

		row := make([]AttributeColumn, len(rec.Template.Attribute))
		for i, tmpl := range rec.Template.Attribute {
			row[i] = tmpl.clone()
		}

		objectEnded := false
		for i := range row {
			if c.Done() {
				break
			}
			var next descriptor
			next, _, err = readDescriptor(c)
			if err != nil {
				return nil, err
			}
			switch next.role {
			case roleObject:
				objectEnded = true
			case roleAbsent:
				_, c, err = readDescriptor(c)
				if err != nil {
					return nil, err
				}
				row[i].Absent = true
				row[i].Value = nil
			case roleAttrib:
				c, err = overlayCell(c, next, &row[i], warnf)
				if err != nil {
					return nil, err
				}
			default:
				return nil, parseErrf(buf, int64(c.Off()), "expected attribute, got role %s", next.role)
			}
			if objectEnded {
				break
			}
		}

		row = append(row, cloneColumns(rec.Template.Invariant)...)
		if _, dup := rec.index[name]; dup {
			warnf("duplicate OBNAME %+v: overwriting earlier definition", name)
		}
		rec.putObject(Object{Name: name, Row: row})
	}

	return rec, nil
}

func cloneColumns(cols []AttributeColumn) []AttributeColumn {
	out := make([]AttributeColumn, len(cols))
	for i, c := range cols {
		out[i] = c.clone()
	}
	return out
}

func readDescriptor(c Cursor) (descriptor, Cursor, error) {
	raw, next, err := c.Raw(1)
	if err != nil {
		return descriptor{}, c, err
	}
	return parseDescriptor(raw[0]), next, nil
}

func readTemplateColumn(c Cursor) (AttributeColumn, Cursor, error) {
	db, c, err := readDescriptor(c)
	if err != nil {
		return AttributeColumn{}, c, err
	}

	col := defaultColumn()
	if !db.labelPresent() {
		return AttributeColumn{}, c, parseErrf(nil, int64(c.Off()), "missing template label")
	}
	col.Label, c, err = c.Ident()
	if err != nil {
		return AttributeColumn{}, c, err
	}
	if db.countPresent() {
		var count uint32
		count, c, err = c.UVari()
		if err != nil {
			return AttributeColumn{}, c, err
		}
		col.Count = count
	}
	if db.reprcPresent() {
		var reprc uint8
		reprc, c, err = c.UShort()
		if err != nil {
			return AttributeColumn{}, c, err
		}
		col.Reprc = RepresentationCode(reprc)
	}
	if db.unitsPresent() {
		col.Units, c, err = c.Units()
		if err != nil {
			return AttributeColumn{}, c, err
		}
	}
	if db.valuePresent() {
		col.Value, c, err = decodeValues(c, col.Reprc, col.Count)
		if err != nil {
			return AttributeColumn{}, c, err
		}
	}
	return col, c, nil
}

// overlayCell applies one ATTRIB descriptor's overrides onto cell, using
// the cell's current (possibly just-overridden) count/reprc to decode its
// value array.
func overlayCell(c Cursor, db descriptor, cell *AttributeColumn, warnf func(string, ...any)) (Cursor, error) {
	var err error
	_, c, err = readDescriptor(c)
	if err != nil {
		return c, err
	}
	cell.Absent = false

	if db.labelPresent() {
		warnf("unexpected label in object attribute")
		_, c, err = c.Ident()
		if err != nil {
			return c, err
		}
	}
	if db.countPresent() {
		var count uint32
		count, c, err = c.UVari()
		if err != nil {
			return c, err
		}
		cell.Count = count
	}
	if db.reprcPresent() {
		var reprc uint8
		reprc, c, err = c.UShort()
		if err != nil {
			return c, err
		}
		cell.Reprc = RepresentationCode(reprc)
	}
	if db.unitsPresent() {
		cell.Units, c, err = c.Units()
		if err != nil {
			return c, err
		}
	}
	if db.valuePresent() {
		cell.Value, c, err = decodeValues(c, cell.Reprc, cell.Count)
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

// Eflr reads and decodes the EFLR at bm. Encrypted records are rejected
// immediately rather than feeding ciphertext to the set-header parser, which
// would otherwise surface a confusing failure further in.
func (f *File) Eflr(bm Bookmark) (*EflrRecord, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if bm.IsEncrypted {
		return nil, parseErrf(nil, bm.Position, "record is encrypted, cannot decode as EFLR")
	}
	buf, err := f.Record(bm)
	if err != nil {
		return nil, err
	}
	return DecodeEflr(buf, f.warnf)
}
