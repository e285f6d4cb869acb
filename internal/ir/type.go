// Package ir defines a typed SSA-form intermediate representation: values,
// instructions, basic blocks, functions and a module, shaped to carry
// exactly the operations CodeGen needs to lower annotated AST into
// something an LLVM-like backend can consume.
package ir

import "fmt"

// TypeKind discriminates an IR-level type. This is a separate, smaller
// vocabulary than the semantic types.Type union: CodeGen's type-mapping
// step collapses the semantic union down to these IR shapes.
type TypeKind uint8

const (
	VoidTy TypeKind = iota
	Int64Ty
	Int8Ty
	Float64Ty
	Bool1Ty
	PtrTy
	StructTy
)

// Type is an IR-level type value. Ptr sets Elem; Struct sets Name (the IR
// module holds the field layout separately, in Module.Structs).
type Type struct {
	Kind TypeKind
	Elem *Type  // Ptr
	Name string // Struct
}

var (
	Void    = &Type{Kind: VoidTy}
	Int64   = &Type{Kind: Int64Ty}
	Int8    = &Type{Kind: Int8Ty}
	Float64 = &Type{Kind: Float64Ty}
	Bool1   = &Type{Kind: Bool1Ty}
)

// NewPtr builds "pointer to elem".
func NewPtr(elem *Type) *Type {
	return &Type{Kind: PtrTy, Elem: elem}
}

// NewStructRef builds a reference to a struct type registered under name
// in the owning Module.
func NewStructRef(name string) *Type {
	return &Type{Kind: StructTy, Name: name}
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case VoidTy:
		return "void"
	case Int64Ty:
		return "i64"
	case Int8Ty:
		return "i8"
	case Float64Ty:
		return "f64"
	case Bool1Ty:
		return "i1"
	case PtrTy:
		return fmt.Sprintf("%s*", t.Elem)
	case StructTy:
		return fmt.Sprintf("%%%s", t.Name)
	default:
		return "?"
	}
}
