package ast

import (
	"testing"

	"pynext/internal/source"
	"pynext/internal/types"
)

func TestExprTypeSlotInitiallyNil(t *testing.T) {
	v := NewVariable(source.Span{}, "x")
	if v.Type() != nil {
		t.Fatal("expected nil type before Sema runs")
	}
	v.SetType(types.IntType)
	if v.Type() != types.IntType {
		t.Fatal("SetType did not stick")
	}
}

func TestTypeNameString(t *testing.T) {
	tn := TypeName{Base: "int", Dims: 2}
	if got := tn.String(); got != "int[][]" {
		t.Fatalf("got %q, want int[][]", got)
	}
}

func TestBinaryOpString(t *testing.T) {
	if OpAdd.String() != "+" || OpAssign.String() != "=" {
		t.Fatal("unexpected BinaryOp stringer output")
	}
}

func TestLiteralFlags(t *testing.T) {
	lit := NewIntLiteral(source.Span{}, "42")
	if !lit.IsInt || lit.IsFloat || lit.IsBool || lit.IsString {
		t.Fatal("expected only IsInt set")
	}
}
