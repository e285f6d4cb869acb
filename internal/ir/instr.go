package ir

// Op enumerates the instruction opcodes CodeGen lowers to.
type Op uint8

const (
	OpAlloca Op = iota
	OpLoad
	OpStore
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpICmpLt
	OpICmpGt
	OpICmpEq
	OpICmpNe
	OpCall
	// OpGEPField computes a pointer to a named struct's Nth field.
	OpGEPField
	// OpGEPIndex computes a pointer to the Nth element of an
	// array-backing pointer.
	OpGEPIndex
)

// Instr is one SSA instruction. Dst is nil for instructions with no
// result (OpStore). Args holds operand values in opcode-specific order:
//   - OpAlloca: none; AllocType names the allocated type.
//   - OpLoad: [addr]
//   - OpStore: [addr, value]
//   - Op{Add,Sub,Mul,Div,ICmp*}: [lhs, rhs]
//   - OpCall: [callee, arg0, arg1, ...] — callee is a GlobalValue
//   - OpGEPField: [base]; FieldIndex selects the field
//   - OpGEPIndex: [base, index]
type Instr struct {
	Op        Op
	Dst       *Value
	Args      []*Value
	AllocType *Type
	FieldIndex int
}
