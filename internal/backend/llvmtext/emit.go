// Package llvmtext renders an internal/ir.Module as textual LLVM IR
// (".ll" syntax), the same representation vovakirdan-surge's own LLVM
// backend produces — no LLVM C-API binding exists anywhere in the
// retrieval corpus, so text is the backend both repos actually emit.
package llvmtext

import (
	"fmt"
	"sort"
	"strings"

	"pynext/internal/ir"
)

// Emitter accumulates ".ll" text for one module.
type Emitter struct {
	mod *ir.Module
	buf strings.Builder

	stringConsts map[string]string // literal text -> global name
	stringOrder  []string
}

// Emit renders mod as a complete LLVM IR text module.
func Emit(mod *ir.Module) string {
	e := &Emitter{mod: mod, stringConsts: make(map[string]string)}
	e.collectStringConsts()

	e.buf.WriteString("target triple = \"x86_64-unknown-linux-gnu\"\n\n")
	e.emitStructTypes()
	e.emitStringConsts()
	for _, f := range mod.Funcs {
		if f.Extern {
			e.emitDecl(f)
		}
	}
	e.buf.WriteString("\n")
	for _, f := range mod.Funcs {
		if !f.Extern {
			newFuncEmitter(e, f).emit()
		}
	}
	return e.buf.String()
}

func (e *Emitter) emitStructTypes() {
	names := make([]string, 0, len(e.mod.Structs))
	byName := make(map[string]*ir.StructLayout, len(e.mod.Structs))
	for _, s := range e.mod.Structs {
		names = append(names, s.Name)
		byName[s.Name] = s
	}
	sort.Strings(names)
	for _, n := range names {
		s := byName[n]
		fields := make([]string, len(s.FieldTypes))
		for i, t := range s.FieldTypes {
			fields[i] = llvmType(t)
		}
		fmt.Fprintf(&e.buf, "%%%s = type { %s }\n", s.Name, strings.Join(fields, ", "))
	}
	if len(names) > 0 {
		e.buf.WriteString("\n")
	}
}

func (e *Emitter) emitDecl(f *ir.Func) {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = llvmType(p.Type)
	}
	fmt.Fprintf(&e.buf, "declare %s @%s(%s)\n", llvmType(f.ResultType), f.Name, strings.Join(params, ", "))
}

// collectStringConsts walks every instruction and terminator operand
// looking for string-pointer constants, and assigns each distinct
// literal a stable global name.
func (e *Emitter) collectStringConsts() {
	note := func(v *ir.Value) {
		if v == nil || v.Kind != ir.ConstValue || v.Type == nil || v.Type.Kind != ir.PtrTy {
			return
		}
		if v.Type.Elem == nil || v.Type.Elem.Kind != ir.Int8Ty {
			return
		}
		if _, ok := e.stringConsts[v.ConstString]; ok {
			return
		}
		name := fmt.Sprintf("@.str.%d", len(e.stringOrder))
		e.stringConsts[v.ConstString] = name
		e.stringOrder = append(e.stringOrder, v.ConstString)
	}
	for _, f := range e.mod.Funcs {
		for _, b := range f.Blocks {
			for _, in := range b.Instrs {
				note(in.Dst)
				for _, a := range in.Args {
					note(a)
				}
			}
			note(b.Term.Value)
			note(b.Term.Cond)
		}
	}
}

func (e *Emitter) emitStringConsts() {
	for _, text := range e.stringOrder {
		name := e.stringConsts[text]
		n := len(text) + 1
		fmt.Fprintf(&e.buf, "%s = private unnamed_addr constant [%d x i8] c\"%s\\00\"\n", name, n, escapeString(text))
	}
	if len(e.stringOrder) > 0 {
		e.buf.WriteString("\n")
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		switch c {
		case '"', '\\':
			fmt.Fprintf(&b, "\\%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func llvmType(t *ir.Type) string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case ir.VoidTy:
		return "void"
	case ir.Int64Ty:
		return "i64"
	case ir.Int8Ty:
		return "i8"
	case ir.Float64Ty:
		return "double"
	case ir.Bool1Ty:
		return "i1"
	case ir.PtrTy:
		return llvmType(t.Elem) + "*"
	case ir.StructTy:
		return "%" + t.Name
	default:
		return "i64"
	}
}
