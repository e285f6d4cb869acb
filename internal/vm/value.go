// Package vm tree-walks an internal/ir.Module, executing its functions
// directly against the SSA instruction list rather than lowering to a
// real machine — the external JIT/LLVM engine spec.md treats as an
// out-of-scope collaborator, so this is the execution path `pynext run`
// and `pynext test` actually use.
package vm

// Kind discriminates a runtime Value's payload.
type Kind uint8

const (
	VVoid Kind = iota
	VInt
	VFloat
	VBool
	VAddr
	VStr // a constant string literal's bytes, passed only to print_string
)

// Addr is an addressable cell within some backing storage: a stack slot,
// a struct's field array, or a heap-allocated array. Cells is a Go slice,
// which already has reference semantics, so two Addrs sharing a Cells
// slice observe each other's writes — exactly the aliasing a pointer
// model needs. GEPField and GEPIndex both just re-point Index.
type Addr struct {
	Cells []Value
	Index int
}

func (a Addr) Get() Value     { return a.Cells[a.Index] }
func (a Addr) Set(v Value)    { a.Cells[a.Index] = v }
func (a Addr) Offset(k int) Addr { return Addr{Cells: a.Cells, Index: a.Index + k} }

// Value is a tagged runtime value.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	B    bool
	Addr Addr
	Str  string
}

func intVal(n int64) Value    { return Value{Kind: VInt, I: n} }
func floatVal(f float64) Value { return Value{Kind: VFloat, F: f} }
func boolVal(b bool) Value    { return Value{Kind: VBool, B: b} }
func addrVal(a Addr) Value    { return Value{Kind: VAddr, Addr: a} }
func strVal(s string) Value   { return Value{Kind: VStr, Str: s} }
