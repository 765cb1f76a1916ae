package dlis

// componentRole is the top-3-bit role field of an EFLR component
// descriptor.
type componentRole uint8

const (
	roleAbsent componentRole = iota
	roleAttrib
	roleInvatr
	roleObject
	roleReserved
	roleRDSet
	roleRSet
	roleSet
)

func (r componentRole) String() string {
	switch r {
	case roleAbsent:
		return "ABSATR"
	case roleAttrib:
		return "ATTRIB"
	case roleInvatr:
		return "INVATR"
	case roleObject:
		return "OBJECT"
	case roleReserved:
		return "RESERV"
	case roleRDSet:
		return "RDSET"
	case roleRSet:
		return "RSET"
	case roleSet:
		return "SET"
	default:
		return "UNKNOWN"
	}
}

// descriptor is a decoded EFLR component descriptor byte: a role plus the
// role-specific format flags packed into its low 5 bits.
type descriptor struct {
	role  componentRole
	flags uint8
}

func parseDescriptor(b byte) descriptor {
	return descriptor{
		role:  componentRole(b >> 5),
		flags: b & 0x1F,
	}
}

// Set/RDSet/RSet format flags.
func (d descriptor) typePresent() bool { return d.flags&0x10 != 0 }
func (d descriptor) namePresent() bool { return d.flags&0x08 != 0 }

// Object format flags.
func (d descriptor) obnamePresent() bool { return d.flags&0x10 != 0 }

// Attrib/Invatr/Absatr format flags.
func (d descriptor) labelPresent() bool { return d.flags&0x10 != 0 }
func (d descriptor) countPresent() bool { return d.flags&0x08 != 0 }
func (d descriptor) reprcPresent() bool { return d.flags&0x04 != 0 }
func (d descriptor) unitsPresent() bool { return d.flags&0x02 != 0 }
func (d descriptor) valuePresent() bool { return d.flags&0x01 != 0 }

// AttributeColumn is one column of an EFLR template, or one cell of an
// object's row once overlaid with that object's overrides.
type AttributeColumn struct {
	Label string
	Count uint32
	Reprc RepresentationCode
	Units string
	Value []any
	// Absent marks a cell explicitly collapsed to null by an ABSATR
	// descriptor, overriding whatever the template default was.
	Absent bool
}

func defaultColumn() AttributeColumn {
	return AttributeColumn{Count: 1, Reprc: IDENT}
}

func (c AttributeColumn) clone() AttributeColumn {
	out := c
	if c.Value != nil {
		out.Value = append([]any(nil), c.Value...)
	}
	return out
}

// Template is the ordered column list parsed from an EFLR's set header:
// attribute columns (the per-object varying data) and invariant columns
// (the same value repeated on every object's row).
type Template struct {
	Attribute []AttributeColumn
	Invariant []AttributeColumn
}

// Object is one EFLR object: its key and the row of cells derived from the
// template by applying this object's overrides.
type Object struct {
	Name ObjectName
	Row  []AttributeColumn
}

// EflrRecord is a decoded Explicitly Formatted Logical Record.
type EflrRecord struct {
	Type     string
	HasType  bool
	Name     string
	HasName  bool
	Template Template

	// Objects preserves first-seen insertion order; duplicate OBNAMEs
	// overwrite their earlier entry in place rather than appending again.
	Objects []Object

	index map[ObjectName]int
}

// Object looks up an object by its OBNAME key, returning ok=false if no
// such object was defined.
func (r *EflrRecord) Object(name ObjectName) (Object, bool) {
	if r.index == nil {
		return Object{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return Object{}, false
	}
	return r.Objects[i], true
}

func (r *EflrRecord) putObject(obj Object) {
	if r.index == nil {
		r.index = make(map[ObjectName]int)
	}
	if i, ok := r.index[obj.Name]; ok {
		r.Objects[i] = obj
		return
	}
	r.index[obj.Name] = len(r.Objects)
	r.Objects = append(r.Objects, obj)
}
