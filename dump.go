package dlis

import (
	"fmt"
	"strings"
)

type DumpFlags uint64

const (
	DumpHeader = DumpFlags(1 << iota)
	DumpTemplate
	DumpObjects
	DumpValues

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

var dumpSep = strings.Repeat("-", 60)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump renders r as a human-readable template + object-row listing,
// controlled by which DumpFlags bits are set.
func (r *EflrRecord) Dump(f DumpFlags) string {
	var buf strings.Builder

	if f.Contains(DumpHeader) {
		typ, name := "<none>", "<none>"
		if r.HasType {
			typ = r.Type
		}
		if r.HasName {
			name = r.Name
		}
		fmt.Fprintf(&buf, "set type=%s name=%s (%d objects)\n", typ, name, len(r.Objects))
	}

	if f.Contains(DumpTemplate) {
		fmt.Fprintln(&buf, dumpSep)
		for i, col := range r.Template.Attribute {
			fmt.Fprintf(&buf, "attribute[%d] %s\n", i, dumpColumn(col))
		}
		for i, col := range r.Template.Invariant {
			fmt.Fprintf(&buf, "invariant[%d] %s\n", i, dumpColumn(col))
		}
	}

	if f.Contains(DumpObjects) {
		fmt.Fprintln(&buf, dumpSep)
		for _, obj := range r.Objects {
			fmt.Fprintf(&buf, "object %s(%d,%d)\n", obj.Name.ID, obj.Name.Origin, obj.Name.Copy)
			if f.Contains(DumpValues) {
				for i, cell := range obj.Row {
					fmt.Fprintf(&buf, "  [%d] %s\n", i, dumpColumn(cell))
				}
			}
		}
	}

	return buf.String()
}

func dumpColumn(col AttributeColumn) string {
	if col.Absent {
		return fmt.Sprintf("%s = <absent>", rpad(col.Label, 16, ' '))
	}
	return fmt.Sprintf("%s count=%d reprc=%s units=%q value=%v",
		rpad(col.Label, 16, ' '), col.Count, col.Reprc, col.Units, col.Value)
}
