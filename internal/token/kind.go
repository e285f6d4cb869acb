// Package token defines the closed token vocabulary the lexer produces:
// end-of-file, error, identifier, literals, keywords, and operators.
package token

// Kind categorizes a single token.
type Kind uint8

const (
	// Invalid marks a token the lexer could not recognize.
	Invalid Kind = iota
	// EOF marks the end of the source input. Sticky: once returned, every
	// later Next() call also returns EOF.
	EOF

	// Ident is an identifier: [A-Za-z_][A-Za-z0-9_]*, not a keyword.
	Ident

	// KwDef is the 'def' keyword.
	KwDef
	// KwEnd is the 'end' keyword.
	KwEnd
	// KwIf is the 'if' keyword.
	KwIf
	// KwElse is the 'else' keyword.
	KwElse
	// KwReturn is the 'return' keyword.
	KwReturn
	// KwVar is the 'var' keyword.
	KwVar
	// KwStruct is the 'struct' keyword.
	KwStruct
	// KwExtern is the 'extern' keyword.
	KwExtern
	// KwWhile is the 'while' keyword.
	KwWhile
	// KwTrue is the 'true' keyword.
	KwTrue
	// KwFalse is the 'false' keyword.
	KwFalse

	// IntLit is an integer literal.
	IntLit
	// FloatLit is a floating point literal.
	FloatLit
	// StringLit is a string literal; Text excludes the surrounding quotes.
	StringLit

	// Plus is '+'.
	Plus
	// Minus is '-'.
	Minus
	// Star is '*'.
	Star
	// Slash is '/'.
	Slash
	// Assign is '='.
	Assign
	// EqEq is '=='.
	EqEq
	// BangEq is '!='.
	BangEq
	// Lt is '<'.
	Lt
	// Gt is '>'.
	Gt
	// Dot is '.'.
	Dot
	// Comma is ','.
	Comma
	// Colon is ':'.
	Colon
	// Arrow is '->'.
	Arrow
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// LBracket is '['.
	LBracket
	// RBracket is ']'.
	RBracket
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case KwDef:
		return "def"
	case KwEnd:
		return "end"
	case KwIf:
		return "if"
	case KwElse:
		return "else"
	case KwReturn:
		return "return"
	case KwVar:
		return "var"
	case KwStruct:
		return "struct"
	case KwExtern:
		return "extern"
	case KwWhile:
		return "while"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case IntLit:
		return "int literal"
	case FloatLit:
		return "float literal"
	case StringLit:
		return "string literal"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case Slash:
		return "'/'"
	case Assign:
		return "'='"
	case EqEq:
		return "'=='"
	case BangEq:
		return "'!='"
	case Lt:
		return "'<'"
	case Gt:
		return "'>'"
	case Dot:
		return "'.'"
	case Comma:
		return "','"
	case Colon:
		return "':'"
	case Arrow:
		return "'->'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	default:
		return "unknown"
	}
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}
