package token

// keywords maps reserved words to their Kind. Keyword matches win over
// Ident for any identifier-shaped lexeme; matching is case-sensitive.
var keywords = map[string]Kind{
	"def":    KwDef,
	"end":    KwEnd,
	"if":     KwIf,
	"else":   KwElse,
	"return": KwReturn,
	"var":    KwVar,
	"struct": KwStruct,
	"extern": KwExtern,
	"while":  KwWhile,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword reports whether text is a reserved word and, if so, its Kind.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
