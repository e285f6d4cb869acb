package vm

import "pynext/internal/ir"

func (vm *VM) execInstr(fn *ir.Func, fr *Frame, in ir.Instr) error {
	switch in.Op {
	case ir.OpAlloca:
		fr.setReg(in.Dst.ID, addrVal(Addr{Cells: allocCells(in.AllocType, vm.mod)}))
	case ir.OpLoad:
		addr := vm.resolve(fr, in.Args[0])
		fr.setReg(in.Dst.ID, addr.Addr.Get())
	case ir.OpStore:
		addr := vm.resolve(fr, in.Args[0])
		val := vm.resolve(fr, in.Args[1])
		addr.Addr.Set(val)
	case ir.OpAdd:
		fr.setReg(in.Dst.ID, intVal(vm.resolve(fr, in.Args[0]).I+vm.resolve(fr, in.Args[1]).I))
	case ir.OpSub:
		fr.setReg(in.Dst.ID, intVal(vm.resolve(fr, in.Args[0]).I-vm.resolve(fr, in.Args[1]).I))
	case ir.OpMul:
		fr.setReg(in.Dst.ID, intVal(vm.resolve(fr, in.Args[0]).I*vm.resolve(fr, in.Args[1]).I))
	case ir.OpDiv:
		fr.setReg(in.Dst.ID, intVal(vm.resolve(fr, in.Args[0]).I/vm.resolve(fr, in.Args[1]).I))
	case ir.OpICmpLt:
		fr.setReg(in.Dst.ID, boolVal(vm.resolve(fr, in.Args[0]).I < vm.resolve(fr, in.Args[1]).I))
	case ir.OpICmpGt:
		fr.setReg(in.Dst.ID, boolVal(vm.resolve(fr, in.Args[0]).I > vm.resolve(fr, in.Args[1]).I))
	case ir.OpICmpEq:
		fr.setReg(in.Dst.ID, boolVal(vm.resolve(fr, in.Args[0]).I == vm.resolve(fr, in.Args[1]).I))
	case ir.OpICmpNe:
		fr.setReg(in.Dst.ID, boolVal(vm.resolve(fr, in.Args[0]).I != vm.resolve(fr, in.Args[1]).I))
	case ir.OpCall:
		return vm.execCall(fr, in)
	case ir.OpGEPField:
		base := vm.resolve(fr, in.Args[0])
		fr.setReg(in.Dst.ID, addrVal(base.Addr.Offset(in.FieldIndex)))
	case ir.OpGEPIndex:
		base := vm.resolve(fr, in.Args[0])
		idx := vm.resolve(fr, in.Args[1])
		fr.setReg(in.Dst.ID, addrVal(base.Addr.Offset(int(idx.I))))
	}
	return nil
}

func (vm *VM) execCall(fr *Frame, in ir.Instr) error {
	calleeName := in.Args[0].Name
	callee := vm.mod.FindFunc(calleeName)
	if callee == nil {
		return nil // undefined-callee diagnostics were already raised by codegen
	}

	args := make([]Value, len(in.Args)-1)
	for i, a := range in.Args[1:] {
		args[i] = vm.resolve(fr, a)
	}

	result, err := vm.call(callee, args)
	if err != nil {
		return err
	}
	if in.Dst != nil {
		fr.setReg(in.Dst.ID, result)
	}
	return nil
}
