package ir

// Builder appends instructions at a current insertion point within a
// single Func, handing out fresh Value IDs as it goes. It does not
// validate that a block is unterminated before appending — callers are
// expected to check Block.Terminated() themselves, as CodeGen does when
// deciding whether to fabricate a missing return.
type Builder struct {
	fn       *Func
	block    *Block
	nextID   int
}

// NewBuilder constructs a Builder positioned at the end of block, within
// fn.
func NewBuilder(fn *Func, block *Block) *Builder {
	return &Builder{fn: fn, block: block}
}

// SetBlock repositions the builder's insertion point.
func (b *Builder) SetBlock(block *Block) {
	b.block = block
}

// Block returns the builder's current insertion block.
func (b *Builder) Block() *Block {
	return b.block
}

func (b *Builder) freshValue(name string, typ *Type) *Value {
	b.nextID++
	return &Value{Kind: RegisterValue, ID: b.nextID, Type: typ, Name: name}
}

func (b *Builder) append(instr Instr) {
	b.block.Instrs = append(b.block.Instrs, instr)
}

// Alloca emits a stack slot of type elemType, returning a pointer-typed
// value. name labels the slot for readability (e.g. a local's source
// name); it has no semantic effect.
func (b *Builder) Alloca(name string, elemType *Type) *Value {
	dst := b.freshValue(name, NewPtr(elemType))
	b.append(Instr{Op: OpAlloca, Dst: dst, AllocType: elemType})
	return dst
}

// Load reads the value stored at addr.
func (b *Builder) Load(addr *Value) *Value {
	dst := b.freshValue("", addr.Type.Elem)
	b.append(Instr{Op: OpLoad, Dst: dst, Args: []*Value{addr}})
	return dst
}

// Store writes value to addr. Stores have no result.
func (b *Builder) Store(addr, value *Value) {
	b.append(Instr{Op: OpStore, Args: []*Value{addr, value}})
}

func (b *Builder) binary(op Op, resultType *Type, lhs, rhs *Value) *Value {
	dst := b.freshValue("", resultType)
	b.append(Instr{Op: op, Dst: dst, Args: []*Value{lhs, rhs}})
	return dst
}

// Add/Sub/Mul/Div lower arithmetic as signed 64-bit integer ops; CodeGen's
// decision to always go through these regardless of the operand's
// semantic float/bool-ness is intentional, not an IR limitation.
func (b *Builder) Add(lhs, rhs *Value) *Value { return b.binary(OpAdd, Int64, lhs, rhs) }
func (b *Builder) Sub(lhs, rhs *Value) *Value { return b.binary(OpSub, Int64, lhs, rhs) }
func (b *Builder) Mul(lhs, rhs *Value) *Value { return b.binary(OpMul, Int64, lhs, rhs) }
func (b *Builder) Div(lhs, rhs *Value) *Value { return b.binary(OpDiv, Int64, lhs, rhs) }

func (b *Builder) ICmp(op Op, lhs, rhs *Value) *Value { return b.binary(op, Bool1, lhs, rhs) }

// Call emits a call to callee (a GlobalValue) with args, returning a
// result of resultType (Void if the callee returns nothing).
func (b *Builder) Call(callee *Value, args []*Value, resultType *Type) *Value {
	allArgs := append([]*Value{callee}, args...)
	if resultType.Kind == VoidTy {
		b.append(Instr{Op: OpCall, Args: allArgs})
		return nil
	}
	dst := b.freshValue("", resultType)
	b.append(Instr{Op: OpCall, Dst: dst, Args: allArgs})
	return dst
}

// GEPField computes a pointer to base's fieldIndex'th field, of type
// fieldType.
func (b *Builder) GEPField(base *Value, fieldIndex int, fieldType *Type) *Value {
	dst := b.freshValue("", NewPtr(fieldType))
	b.append(Instr{Op: OpGEPField, Dst: dst, Args: []*Value{base}, FieldIndex: fieldIndex})
	return dst
}

// GEPIndex computes a pointer to the index'th element reachable from
// base, of type elemType.
func (b *Builder) GEPIndex(base, index *Value, elemType *Type) *Value {
	dst := b.freshValue("", NewPtr(elemType))
	b.append(Instr{Op: OpGEPIndex, Dst: dst, Args: []*Value{base, index}})
	return dst
}

// Ret terminates the current block with a return. value is nil for a void
// return.
func (b *Builder) Ret(value *Value) {
	b.block.Term = Terminator{Kind: TermRet, Value: value}
}

// Br terminates the current block with an unconditional jump.
func (b *Builder) Br(target *Block) {
	b.block.Term = Terminator{Kind: TermBr, Target: target}
}

// CondBr terminates the current block with a conditional branch.
func (b *Builder) CondBr(cond *Value, then, els *Block) {
	b.block.Term = Terminator{Kind: TermCondBr, Cond: cond, Target: then, Else: els}
}
