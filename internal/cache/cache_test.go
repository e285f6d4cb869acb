package cache

import (
	"testing"

	"pynext/internal/ir"
	"pynext/internal/project"
)

func sampleModule() *ir.Module {
	fn := &ir.Func{Name: "f", ResultType: ir.Int64}
	cond := &ir.Block{Name: "cond"}
	body := &ir.Block{Name: "body"}
	after := &ir.Block{Name: "after"}
	cond.Term = ir.Terminator{Kind: ir.TermCondBr, Cond: ir.ConstBool1(true), Target: body, Else: after}
	body.Term = ir.Terminator{Kind: ir.TermBr, Target: cond} // back-edge
	after.Term = ir.Terminator{Kind: ir.TermRet, Value: ir.ConstInt64(0)}
	fn.Blocks = []*ir.Block{cond, body, after}
	return &ir.Module{Funcs: []*ir.Func{fn}}
}

func TestEncodeDecodeRoundTripsBackEdges(t *testing.T) {
	mod := sampleModule()
	cm := Encode(mod)
	got := Decode(cm)

	fn := got.FindFunc("f")
	if fn == nil {
		t.Fatal("expected function f to round-trip")
	}
	body := fn.Blocks[1]
	cond := fn.Blocks[0]
	if body.Term.Target != cond {
		t.Fatal("expected the loop body's back-edge to point at the same cond block instance")
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := project.HashBytes([]byte("source bytes"))

	if _, ok, err := s.Get(key); err != nil || ok {
		t.Fatalf("expected a miss before Put, got ok=%v err=%v", ok, err)
	}

	mod := sampleModule()
	if err := s.Put(key, mod); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected a hit after Put, got ok=%v err=%v", ok, err)
	}
	if got.FindFunc("f") == nil {
		t.Fatal("expected the round-tripped module to contain f")
	}
}

func TestStoreGetMissingKeyIsNotAnError(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := s.Get(project.HashBytes([]byte("never written")))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no hit for an unwritten key")
	}
}
