package llvmtext

import (
	"fmt"
	"strings"

	"pynext/internal/ir"
)

// funcEmitter renders one non-extern function, tracking a per-function
// register-name table since a *ir.Value's Go identity is not stable
// across the builder's lifetime — only (Kind, ID) is.
type funcEmitter struct {
	e       *Emitter
	f       *ir.Func
	regName map[int]string
	tmpID   int
}

func newFuncEmitter(e *Emitter, f *ir.Func) *funcEmitter {
	return &funcEmitter{e: e, f: f, regName: make(map[int]string)}
}

func (fe *funcEmitter) emit() {
	params := make([]string, len(fe.f.Params))
	for i, p := range fe.f.Params {
		params[i] = fmt.Sprintf("%s %%%s", llvmType(p.Type), p.Name)
	}
	fmt.Fprintf(&fe.e.buf, "define %s @%s(%s) {\n", llvmType(fe.f.ResultType), fe.f.Name, strings.Join(params, ", "))
	for _, b := range fe.f.Blocks {
		fe.emitBlock(b)
	}
	fe.e.buf.WriteString("}\n\n")
}

func (fe *funcEmitter) emitBlock(b *ir.Block) {
	fmt.Fprintf(&fe.e.buf, "%s:\n", b.Name)
	for _, in := range b.Instrs {
		fe.emitInstr(in)
	}
	fe.emitTerm(b.Term)
}

// dst names the destination register for in, allocating it on first use.
func (fe *funcEmitter) dst(v *ir.Value) string {
	if v == nil {
		return ""
	}
	if name, ok := fe.regName[v.ID]; ok {
		return name
	}
	var name string
	if v.Name != "" {
		name = fmt.Sprintf("%%%s.%d", v.Name, v.ID)
	} else {
		name = fmt.Sprintf("%%t%d", v.ID)
	}
	fe.regName[v.ID] = name
	return name
}

// ref renders v as an operand: a literal for constants, a name for
// registers/params/globals.
func (fe *funcEmitter) ref(v *ir.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case ir.ConstValue:
		return fe.constRef(v)
	case ir.ParamValue:
		return "%" + v.Name
	case ir.GlobalValue:
		return "@" + v.Name
	default:
		return fe.dst(v)
	}
}

func (fe *funcEmitter) constRef(v *ir.Value) string {
	switch v.Type.Kind {
	case ir.Int64Ty:
		return fmt.Sprintf("%d", v.ConstInt)
	case ir.Bool1Ty:
		if v.ConstBool {
			return "1"
		}
		return "0"
	case ir.Float64Ty:
		return fmt.Sprintf("%g", v.ConstFloat)
	case ir.PtrTy:
		name, ok := fe.e.stringConsts[v.ConstString]
		if !ok {
			return "null"
		}
		n := len(v.ConstString) + 1
		return fmt.Sprintf("getelementptr inbounds ([%d x i8], [%d x i8]* %s, i64 0, i64 0)", n, n, name)
	default:
		return "0"
	}
}
