package ir

import "fmt"

// Value is a typed SSA virtual register, a function parameter, or a
// constant. ID is unique within the owning Func for register-kind values.
type Value struct {
	Kind ValueKind
	ID   int
	Type *Type

	// ConstInt/ConstFloat/ConstBool/ConstString hold the literal payload
	// for Kind == ConstValue; exactly one is meaningful, selected by Type.
	ConstInt    int64
	ConstFloat  float64
	ConstBool   bool
	ConstString string

	// Name labels a Param-kind value with its source parameter name, and
	// a Register-kind value that should render with a readable name
	// (e.g. the alloca for a named local) instead of a bare %N.
	Name string
}

// ValueKind discriminates how a Value should be referenced and rendered.
type ValueKind uint8

const (
	// RegisterValue is the result of some instruction in the current
	// function.
	RegisterValue ValueKind = iota
	// ParamValue is one of the current function's incoming parameters.
	ParamValue
	// ConstValue is a literal constant.
	ConstValue
	// GlobalValue references a module-level global (e.g. a function).
	GlobalValue
)

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ConstValue:
		return fmt.Sprintf("const(%s)", v.Type)
	case ParamValue:
		return fmt.Sprintf("%%%s", v.Name)
	case GlobalValue:
		return fmt.Sprintf("@%s", v.Name)
	default:
		if v.Name != "" {
			return fmt.Sprintf("%%%s.%d", v.Name, v.ID)
		}
		return fmt.Sprintf("%%t%d", v.ID)
	}
}

// ConstInt64 builds an Int64-typed constant value.
func ConstInt64(n int64) *Value {
	return &Value{Kind: ConstValue, Type: Int64, ConstInt: n}
}

// ConstFloat64 builds a Float64-typed constant value.
func ConstFloat64(f float64) *Value {
	return &Value{Kind: ConstValue, Type: Float64, ConstFloat: f}
}

// ConstBool1 builds a Bool1-typed constant value.
func ConstBool1(b bool) *Value {
	return &Value{Kind: ConstValue, Type: Bool1, ConstBool: b}
}

// ConstStringPtr builds a pointer-to-i8-typed constant referring to a
// NUL-terminated string literal.
func ConstStringPtr(s string) *Value {
	return &Value{Kind: ConstValue, Type: NewPtr(Int8), ConstString: s}
}
