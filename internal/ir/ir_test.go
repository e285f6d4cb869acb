package ir

import "testing"

func TestBuilderAllocaLoadStore(t *testing.T) {
	fn := &Func{Name: "f", ResultType: Int64}
	block := &Block{Name: "entry"}
	fn.Blocks = []*Block{block}
	b := NewBuilder(fn, block)

	slot := b.Alloca("x", Int64)
	b.Store(slot, ConstInt64(42))
	loaded := b.Load(slot)

	if loaded.Type.Kind != Int64Ty {
		t.Fatalf("got %v, want Int64", loaded.Type)
	}
	if len(block.Instrs) != 3 {
		t.Fatalf("got %d instrs, want 3", len(block.Instrs))
	}
}

func TestBlockTerminated(t *testing.T) {
	block := &Block{}
	if block.Terminated() {
		t.Fatal("fresh block should not be terminated")
	}
	fn := &Func{}
	b := NewBuilder(fn, block)
	b.Ret(nil)
	if !block.Terminated() {
		t.Fatal("expected Ret to terminate the block")
	}
}

func TestGEPFieldProducesPointerType(t *testing.T) {
	fn := &Func{}
	block := &Block{}
	b := NewBuilder(fn, block)
	base := &Value{Kind: ParamValue, Type: NewPtr(NewStructRef("Point")), Name: "p"}
	field := b.GEPField(base, 1, Int64)
	if field.Type.Kind != PtrTy || field.Type.Elem.Kind != Int64Ty {
		t.Fatalf("got %v, want pointer to i64", field.Type)
	}
}

func TestModuleFindFuncAndStruct(t *testing.T) {
	mod := &Module{
		Funcs:   []*Func{{Name: "main"}},
		Structs: []*StructLayout{{Name: "Point", FieldNames: []string{"x", "y"}}},
	}
	if mod.FindFunc("main") == nil {
		t.Fatal("expected to find main")
	}
	if mod.FindFunc("missing") != nil {
		t.Fatal("expected nil for a missing function")
	}
	st := mod.FindStruct("Point")
	if st == nil || st.FieldIndex("y") != 1 {
		t.Fatalf("got %+v, want y at index 1", st)
	}
}
