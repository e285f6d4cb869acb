package ast

// TypeName is the textual form of a type annotation as written in source:
// a base identifier followed by zero or more "[]" suffixes.
// The parser preserves this textual form verbatim; Sema's resolveType is
// the only place that turns it into a semantic types.Type.
type TypeName struct {
	Base string
	// Dims is the number of "[]" suffixes, e.g. 2 for "int[][]".
	Dims int
}

// String renders the type name the way it appeared in source.
func (tn TypeName) String() string {
	s := tn.Base
	for i := 0; i < tn.Dims; i++ {
		s += "[]"
	}
	return s
}
