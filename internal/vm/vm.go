package vm

import (
	"bufio"
	"fmt"
	"io"

	"pynext/internal/ir"
)

// VM executes a single compiled module's functions against a host I/O
// sink; every malloc call gets its own freshly allocated cell slice.
type VM struct {
	mod *ir.Module
	out *bufio.Writer
}

// New builds a VM writing print_int/print_string output to w.
func New(mod *ir.Module, w io.Writer) *VM {
	return &VM{mod: mod, out: bufio.NewWriter(w)}
}

// Run executes the module's entry point and returns its i64 result:
// "main" when present, otherwise the implicit top-level "__init" (a
// user-declared main always wins, even though it leaves any top-level
// statements compiled into __init unreachable — materializing that
// naming rule is internal/codegen's job, not this package's).
func (vm *VM) Run() (int64, error) {
	name := "main"
	if vm.mod.FindFunc(name) == nil {
		name = "__init"
	}
	return vm.RunEntry(name)
}

// RunEntry executes the named function with no arguments and returns its
// i64 result.
func (vm *VM) RunEntry(name string) (int64, error) {
	fn := vm.mod.FindFunc(name)
	if fn == nil {
		return 0, fmt.Errorf("no such function: %s", name)
	}
	result, err := vm.call(fn, nil)
	if err != nil {
		return 0, err
	}
	return result.I, nil
}

func (vm *VM) call(fn *ir.Func, args []Value) (Value, error) {
	if fn.Extern {
		return vm.callHost(fn.Name, args)
	}

	fr := newFrame()
	for i, p := range fn.Params {
		fr.setParam(p.Name, args[i])
	}

	block := fn.EntryBlock()
	for block != nil {
		next, ret, done, err := vm.execBlock(fn, fr, block)
		if err != nil {
			return Value{}, err
		}
		if done {
			return ret, nil
		}
		block = next
	}
	return Value{}, nil
}

// execBlock runs block's straight-line instructions, then its terminator.
// done reports a TermRet was reached; next is the successor block for
// TermBr/TermCondBr.
func (vm *VM) execBlock(fn *ir.Func, fr *Frame, block *ir.Block) (next *ir.Block, ret Value, done bool, err error) {
	for _, in := range block.Instrs {
		if err := vm.execInstr(fn, fr, in); err != nil {
			return nil, Value{}, false, err
		}
	}

	switch block.Term.Kind {
	case ir.TermRet:
		if block.Term.Value == nil {
			return nil, Value{}, true, nil
		}
		return nil, vm.resolve(fr, block.Term.Value), true, nil
	case ir.TermBr:
		return block.Term.Target, Value{}, false, nil
	case ir.TermCondBr:
		cond := vm.resolve(fr, block.Term.Cond)
		if cond.B {
			return block.Term.Target, Value{}, false, nil
		}
		return block.Term.Else, Value{}, false, nil
	default:
		return nil, Value{}, false, fmt.Errorf("block %q has no terminator", block.Name)
	}
}

func (vm *VM) resolve(fr *Frame, v *ir.Value) Value {
	switch v.Kind {
	case ir.ConstValue:
		return vm.constValue(v)
	case ir.ParamValue:
		return fr.params[v.Name]
	default: // RegisterValue
		return fr.regs[v.ID]
	}
}

func (vm *VM) constValue(v *ir.Value) Value {
	switch v.Type.Kind {
	case ir.Int64Ty:
		return intVal(v.ConstInt)
	case ir.Float64Ty:
		return floatVal(v.ConstFloat)
	case ir.Bool1Ty:
		return boolVal(v.ConstBool)
	case ir.PtrTy:
		return strVal(v.ConstString)
	default:
		return Value{}
	}
}

func allocCells(t *ir.Type, mod *ir.Module) []Value {
	if t.Kind == ir.StructTy {
		if s := mod.FindStruct(t.Name); s != nil {
			return make([]Value, len(s.FieldNames))
		}
	}
	return make([]Value, 1)
}
