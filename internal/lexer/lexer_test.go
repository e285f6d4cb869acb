package lexer

import (
	"testing"

	"pynext/internal/source"
	"pynext/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := New(f, nil)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "def end if else return var struct extern while true false foo_bar")
	wantKinds := []token.Kind{
		token.KwDef, token.KwEnd, token.KwIf, token.KwElse, token.KwReturn,
		token.KwVar, token.KwStruct, token.KwExtern, token.KwWhile, token.KwTrue,
		token.KwFalse, token.Ident, token.EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "-> == != = < > + - * / . , : ( ) [ ]")
	want := []token.Kind{
		token.Arrow, token.EqEq, token.BangEq, token.Assign, token.Lt, token.Gt,
		token.Plus, token.Minus, token.Star, token.Slash, token.Dot, token.Comma,
		token.Colon, token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexIntAndFloat(t *testing.T) {
	toks := lexAll(t, "123 3.14 3. 5x")
	if toks[0].Kind != token.IntLit || toks[0].Text != "123" {
		t.Errorf("got %v %q, want IntLit 123", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.FloatLit || toks[1].Text != "3.14" {
		t.Errorf("got %v %q, want FloatLit 3.14", toks[1].Kind, toks[1].Text)
	}
	// "3." with no trailing digit stays an IntLit + separate Dot.
	if toks[2].Kind != token.IntLit || toks[2].Text != "3" {
		t.Errorf("got %v %q, want IntLit 3", toks[2].Kind, toks[2].Text)
	}
	if toks[3].Kind != token.Dot {
		t.Errorf("got %v, want Dot", toks[3].Kind)
	}
}

func TestLexString(t *testing.T) {
	toks := lexAll(t, `"hello world"`)
	if toks[0].Kind != token.StringLit || toks[0].Text != "hello world" {
		t.Fatalf("got %v %q, want StringLit %q", toks[0].Kind, toks[0].Text, "hello world")
	}
}

func TestLexComment(t *testing.T) {
	toks := lexAll(t, "1 # a comment\n2")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Text != "1" || toks[1].Text != "2" {
		t.Errorf("comment not skipped: %q %q", toks[0].Text, toks[1].Text)
	}
}

func TestLexEOFIsSticky(t *testing.T) {
	f := source.New("t.next", []byte("1"))
	lx := New(f, nil)
	lx.Next()
	first := lx.Next()
	second := lx.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatalf("expected repeated EOF, got %v then %v", first.Kind, second.Kind)
	}
}

func TestLexPositions(t *testing.T) {
	f := source.New("t.next", []byte("a\nbb"))
	lx := New(f, nil)
	first := lx.Next()
	second := lx.Next()
	if got := f.Position(first.Span.Start); got.Line != 1 || got.Column != 1 {
		t.Errorf("first token position = %+v", got)
	}
	if got := f.Position(second.Span.Start); got.Line != 2 || got.Column != 1 {
		t.Errorf("second token position = %+v", got)
	}
}

func TestLexUnknownChar(t *testing.T) {
	var bag diagBag
	f := source.New("t.next", []byte("@"))
	lx := New(f, &bag)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("got %v, want Invalid", tok.Kind)
	}
	if len(bag.reports) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(bag.reports))
	}
}
