package llvmtext

import (
	"fmt"

	"pynext/internal/ir"
)

func (fe *funcEmitter) emitInstr(in ir.Instr) {
	buf := &fe.e.buf
	switch in.Op {
	case ir.OpAlloca:
		fmt.Fprintf(buf, "  %s = alloca %s\n", fe.dst(in.Dst), llvmType(in.AllocType))
	case ir.OpLoad:
		fmt.Fprintf(buf, "  %s = load %s, %s %s\n", fe.dst(in.Dst), llvmType(in.Dst.Type), llvmType(in.Args[0].Type), fe.ref(in.Args[0]))
	case ir.OpStore:
		fmt.Fprintf(buf, "  store %s %s, %s %s\n", llvmType(in.Args[1].Type), fe.ref(in.Args[1]), llvmType(in.Args[0].Type), fe.ref(in.Args[0]))
	case ir.OpAdd:
		fe.emitBinOp(in, "add")
	case ir.OpSub:
		fe.emitBinOp(in, "sub")
	case ir.OpMul:
		fe.emitBinOp(in, "mul")
	case ir.OpDiv:
		fe.emitBinOp(in, "sdiv")
	case ir.OpICmpLt:
		fe.emitICmp(in, "slt")
	case ir.OpICmpGt:
		fe.emitICmp(in, "sgt")
	case ir.OpICmpEq:
		fe.emitICmp(in, "eq")
	case ir.OpICmpNe:
		fe.emitICmp(in, "ne")
	case ir.OpCall:
		fe.emitCall(in)
	case ir.OpGEPField:
		fe.emitGEPField(in)
	case ir.OpGEPIndex:
		fe.emitGEPIndex(in)
	}
}

func (fe *funcEmitter) emitBinOp(in ir.Instr, mnem string) {
	fmt.Fprintf(&fe.e.buf, "  %s = %s %s %s, %s\n", fe.dst(in.Dst), mnem, llvmType(in.Args[0].Type), fe.ref(in.Args[0]), fe.ref(in.Args[1]))
}

func (fe *funcEmitter) emitICmp(in ir.Instr, cond string) {
	fmt.Fprintf(&fe.e.buf, "  %s = icmp %s %s %s, %s\n", fe.dst(in.Dst), cond, llvmType(in.Args[0].Type), fe.ref(in.Args[0]), fe.ref(in.Args[1]))
}

func (fe *funcEmitter) emitCall(in ir.Instr) {
	callee := in.Args[0]
	args := in.Args[1:]
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s %s", llvmType(a.Type), fe.ref(a))
	}
	argList := ""
	for i, p := range parts {
		if i > 0 {
			argList += ", "
		}
		argList += p
	}
	resultType := llvmType(callee.Type)
	if in.Dst != nil {
		fmt.Fprintf(&fe.e.buf, "  %s = call %s @%s(%s)\n", fe.dst(in.Dst), resultType, callee.Name, argList)
	} else {
		fmt.Fprintf(&fe.e.buf, "  call %s @%s(%s)\n", resultType, callee.Name, argList)
	}
}

func (fe *funcEmitter) emitGEPField(in ir.Instr) {
	base := in.Args[0]
	structType := base.Type.Elem
	fmt.Fprintf(&fe.e.buf, "  %s = getelementptr inbounds %s, %s %s, i32 0, i32 %d\n",
		fe.dst(in.Dst), llvmType(structType), llvmType(base.Type), fe.ref(base), in.FieldIndex)
}

func (fe *funcEmitter) emitGEPIndex(in ir.Instr) {
	base := in.Args[0]
	index := in.Args[1]
	elemType := base.Type.Elem
	fmt.Fprintf(&fe.e.buf, "  %s = getelementptr inbounds %s, %s %s, i64 %s\n",
		fe.dst(in.Dst), llvmType(elemType), llvmType(base.Type), fe.ref(base), fe.ref(index))
}

func (fe *funcEmitter) emitTerm(t ir.Terminator) {
	buf := &fe.e.buf
	switch t.Kind {
	case ir.TermRet:
		if t.Value == nil {
			buf.WriteString("  ret void\n")
		} else {
			fmt.Fprintf(buf, "  ret %s %s\n", llvmType(t.Value.Type), fe.ref(t.Value))
		}
	case ir.TermBr:
		fmt.Fprintf(buf, "  br label %%%s\n", t.Target.Name)
	case ir.TermCondBr:
		fmt.Fprintf(buf, "  br i1 %s, label %%%s, label %%%s\n", fe.ref(t.Cond), t.Target.Name, t.Else.Name)
	}
}
