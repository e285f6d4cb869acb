// Package cache memoizes a compiled ir.Module on disk, keyed by the
// sha256 content hash of the source file it came from. ir.Module's
// pointer graph has back-edges (a loop's body block branches back to its
// condition block), which a naive reflection-based encoder would recurse
// into forever, so this package first flattens the module into an
// index-addressed schema safe to hand to msgpack, and rebuilds the
// pointer graph on the way back out.
package cache

// cachedValue mirrors ir.Value with no pointer fields.
type cachedValue struct {
	Kind        uint8
	ID          int
	Type        cachedType
	ConstInt    int64
	ConstFloat  float64
	ConstBool   bool
	ConstString string
	Name        string
}

// cachedType mirrors ir.Type; Elem is encoded by value since types form a
// tree, never a cycle.
type cachedType struct {
	Kind uint8
	Elem *cachedType
	Name string
}

type cachedInstr struct {
	Op         uint8
	HasDst     bool
	Dst        cachedValue
	Args       []cachedValue
	HasAlloc   bool
	AllocType  cachedType
	FieldIndex int
}

// cachedTerm mirrors ir.Terminator; Target/Else reference sibling blocks
// by index within the same Func, breaking the pointer cycle.
type cachedTerm struct {
	Kind       uint8
	HasValue   bool
	Value      cachedValue
	HasCond    bool
	Cond       cachedValue
	TargetIdx  int // -1 if unset
	ElseIdx    int // -1 if unset
}

type cachedBlock struct {
	Name   string
	Instrs []cachedInstr
	Term   cachedTerm
}

type cachedFunc struct {
	Name       string
	Params     []cachedValue
	ResultType cachedType
	Blocks     []cachedBlock
	Extern     bool
}

type cachedStruct struct {
	Name       string
	FieldNames []string
	FieldTypes []cachedType
}

// CachedModule is the on-disk schema version of an ir.Module.
type CachedModule struct {
	Schema  uint16
	Funcs   []cachedFunc
	Structs []cachedStruct
}

// schemaVersion guards against decoding a payload written by an
// incompatible version of this package.
const schemaVersion uint16 = 1
