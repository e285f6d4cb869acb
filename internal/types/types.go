// Package types implements the compiler's closed semantic-type union: scalars,
// string, void, struct-by-name, array-of-T, and function types.
package types

import "fmt"

// Kind discriminates the Type union.
type Kind uint8

const (
	// Void is the absence of a value (unit return type, unresolved name).
	Void Kind = iota
	// Int is a 64-bit signed integer.
	Int
	// Float is a 64-bit IEEE float.
	Float
	// Bool is a 1-bit boolean.
	Bool
	// String is a pointer to NUL-terminated UTF-8 bytes.
	String
	// Struct is a named aggregate with ordered fields.
	Struct
	// Array is "array of T" for any non-void T.
	Array
	// Func is a function signature.
	Func
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Struct:
		return "struct"
	case Array:
		return "array"
	case Func:
		return "function"
	default:
		return "unknown"
	}
}

// Field is one (name, type) pair of a struct, in declaration order.
type Field struct {
	Name string
	Type *Type
}

// Type is a semantic type value. Scalars only set Kind; Struct sets Name and
// Fields; Array sets Elem; Func sets Params and Result.
type Type struct {
	Kind Kind

	// Struct
	Name   string
	Fields []Field

	// Array
	Elem *Type

	// Func
	Params []*Type
	Result *Type
}

var (
	VoidType   = &Type{Kind: Void}
	IntType    = &Type{Kind: Int}
	FloatType  = &Type{Kind: Float}
	BoolType   = &Type{Kind: Bool}
	StringType = &Type{Kind: String}
)

// NewArray builds an "array of elem" type.
func NewArray(elem *Type) *Type {
	return &Type{Kind: Array, Elem: elem}
}

// NewFunc builds a function type.
func NewFunc(params []*Type, result *Type) *Type {
	return &Type{Kind: Func, Params: params, Result: result}
}

// NewStruct builds a named struct type with fields in declaration order.
func NewStruct(name string, fields []Field) *Type {
	return &Type{Kind: Struct, Name: name, Fields: fields}
}

// FieldIndex returns the declaration-order index of name in a Struct type,
// or -1 if no such field exists. Declaration order is the index both Sema
// diagnostics and CodeGen GEP rely on.
func (t *Type) FieldIndex(name string) int {
	if t == nil || t.Kind != Struct {
		return -1
	}
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FieldType returns the type of field name, or nil if absent.
func (t *Type) FieldType(name string) *Type {
	idx := t.FieldIndex(name)
	if idx < 0 {
		return nil
	}
	return t.Fields[idx].Type
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Struct:
		return t.Name
	case Array:
		return fmt.Sprintf("%s[]", t.Elem)
	case Func:
		params := ""
		for i, p := range t.Params {
			if i > 0 {
				params += ", "
			}
			params += p.String()
		}
		return fmt.Sprintf("(%s) -> %s", params, t.Result)
	default:
		return t.Kind.String()
	}
}

// Equal reports whether two types denote the same semantic type. Struct
// equality is nominal (by name), matching the language's nominal struct
// typing.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Struct:
		return a.Name == b.Name
	case Array:
		return Equal(a.Elem, b.Elem)
	case Func:
		if len(a.Params) != len(b.Params) || !Equal(a.Result, b.Result) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
