package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"def":    KwDef,
		"end":    KwEnd,
		"struct": KwStruct,
		"while":  KwWhile,
		"foo":    Invalid,
	}
	for text, want := range cases {
		k, ok := LookupKeyword(text)
		if want == Invalid {
			if ok {
				t.Errorf("LookupKeyword(%q) unexpectedly matched %v", text, k)
			}
			continue
		}
		if !ok || k != want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, true", text, k, ok, want)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	if !IntLit.IsLiteral() || !KwTrue.IsLiteral() {
		t.Fatal("expected IntLit and KwTrue to be literals")
	}
	if KwIf.IsLiteral() {
		t.Fatal("did not expect KwIf to be a literal")
	}
}
