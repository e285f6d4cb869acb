// Package ast describes the module's algebraic syntax tree: a closed set of
// expression and statement variants, represented as Go structs behind
// marker interfaces rather than arena+ID indirection. A flat sum type over
// expression kinds keeps dispatch as an exhaustive type switch instead of
// a visitor hierarchy.
package ast

import (
	"pynext/internal/source"
	"pynext/internal/types"
)

// Expr is any expression node. Every variant carries a Span and a mutable
// Type slot, initially nil, filled in by Sema.
type Expr interface {
	exprNode()
	Span() source.Span
	// SetType records Sema's inferred semantic type for this expression.
	SetType(*types.Type)
	// Type returns the semantic type Sema assigned, or nil before Sema runs.
	Type() *types.Type
}

// exprBase provides the Span/Type bookkeeping shared by every Expr variant.
type exprBase struct {
	span source.Span
	typ  *types.Type
}

func (e *exprBase) Span() source.Span    { return e.span }
func (e *exprBase) SetType(t *types.Type) { e.typ = t }
func (e *exprBase) Type() *types.Type    { return e.typ }

// Literal is an integer, float, boolean, or string literal. Exactly one of
// the Is* flags is set.
type Literal struct {
	exprBase
	Text     string
	IsInt    bool
	IsFloat  bool
	IsBool   bool
	IsString bool
}

func (*Literal) exprNode() {}

// NewIntLiteral constructs an integer Literal.
func NewIntLiteral(sp source.Span, text string) *Literal {
	return &Literal{exprBase: exprBase{span: sp}, Text: text, IsInt: true}
}

// NewFloatLiteral constructs a floating-point Literal.
func NewFloatLiteral(sp source.Span, text string) *Literal {
	return &Literal{exprBase: exprBase{span: sp}, Text: text, IsFloat: true}
}

// NewBoolLiteral constructs a boolean Literal ("true" or "false").
func NewBoolLiteral(sp source.Span, text string) *Literal {
	return &Literal{exprBase: exprBase{span: sp}, Text: text, IsBool: true}
}

// NewStringLiteral constructs a string Literal. Text is the contents
// between the quotes as written, without escape processing.
func NewStringLiteral(sp source.Span, text string) *Literal {
	return &Literal{exprBase: exprBase{span: sp}, Text: text, IsString: true}
}

// Variable references a named binding.
type Variable struct {
	exprBase
	Name string
}

func (*Variable) exprNode() {}

// NewVariable constructs a Variable reference.
func NewVariable(sp source.Span, name string) *Variable {
	return &Variable{exprBase: exprBase{span: sp}, Name: name}
}

// BinaryOp identifies a Binary expression's operator.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpEq
	OpNe
	OpAssign
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpAssign:
		return "="
	default:
		return "?"
	}
}

// Binary is a two-operand expression, including assignment (op '=').
// Sema/CodeGen treat the Assign operator specially: Left must be an
// l-value (Variable, MemberAccess, or Index).
type Binary struct {
	exprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// NewBinary constructs a Binary expression.
func NewBinary(sp source.Span, op BinaryOp, left, right Expr) *Binary {
	return &Binary{exprBase: exprBase{span: sp}, Op: op, Left: left, Right: right}
}

// Call invokes a named function with positional arguments.
type Call struct {
	exprBase
	Callee string
	Args   []Expr
}

func (*Call) exprNode() {}

// NewCall constructs a Call expression.
func NewCall(sp source.Span, callee string, args []Expr) *Call {
	return &Call{exprBase: exprBase{span: sp}, Callee: callee, Args: args}
}

// MemberAccess reads a struct field: object.member.
type MemberAccess struct {
	exprBase
	Object Expr
	Member string
}

func (*MemberAccess) exprNode() {}

// NewMemberAccess constructs a MemberAccess expression.
func NewMemberAccess(sp source.Span, object Expr, member string) *MemberAccess {
	return &MemberAccess{exprBase: exprBase{span: sp}, Object: object, Member: member}
}

// Index reads an array element: object[index].
type Index struct {
	exprBase
	Object Expr
	Idx    Expr
}

func (*Index) exprNode() {}

// NewIndex constructs an Index expression.
func NewIndex(sp source.Span, object, idx Expr) *Index {
	return &Index{exprBase: exprBase{span: sp}, Object: object, Idx: idx}
}

// ArrayLiteral is a bracketed list of elements, heap-allocated by CodeGen.
type ArrayLiteral struct {
	exprBase
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}

// NewArrayLiteral constructs an ArrayLiteral expression.
func NewArrayLiteral(sp source.Span, elements []Expr) *ArrayLiteral {
	return &ArrayLiteral{exprBase: exprBase{span: sp}, Elements: elements}
}
