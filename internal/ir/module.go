package ir

// StructLayout is the IR-level field layout for a struct: parallel to
// types.Type's Fields, but carrying IR types instead of semantic ones,
// indexed identically for GEP.
type StructLayout struct {
	Name       string
	FieldNames []string
	FieldTypes []*Type
}

// FieldIndex returns the declaration-order index of name, or -1 if absent.
func (s *StructLayout) FieldIndex(name string) int {
	for i, n := range s.FieldNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Module is a complete compiled unit: every function (defined or extern)
// plus every struct layout referenced by a GEP.
type Module struct {
	Funcs   []*Func
	Structs []*StructLayout
}

// FindFunc returns the function named name, or nil.
func (m *Module) FindFunc(name string) *Func {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FindStruct returns the struct layout named name, or nil.
func (m *Module) FindStruct(name string) *StructLayout {
	for _, s := range m.Structs {
		if s.Name == name {
			return s
		}
	}
	return nil
}
