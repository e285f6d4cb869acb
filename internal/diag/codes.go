package diag

// Code identifies a diagnostic's kind, independent of its rendered message.
type Code string

const (
	// LexUnknownChar: the lexer hit a byte it doesn't recognize.
	LexUnknownChar Code = "lex-unknown-char"
	// LexUnterminatedString: a string literal was never closed.
	LexUnterminatedString Code = "lex-unterminated-string"

	// SynUnexpectedToken: the parser's consume() saw a token other than
	// the one it required; a fatal parse error.
	SynUnexpectedToken Code = "syn-unexpected-token"
	// SynVarNeedsTypeOrInit: `var x` with neither a type nor an initializer.
	SynVarNeedsTypeOrInit Code = "syn-var-needs-type-or-init"

	// SemaUndefinedName: a Variable or Call referenced an unknown symbol.
	SemaUndefinedName Code = "sema-undefined-name"
	// SemaNotAFunction: a Call's callee resolved to a non-function symbol.
	SemaNotAFunction Code = "sema-not-a-function"
	// SemaArityMismatch: a Call passed the wrong number of arguments.
	SemaArityMismatch Code = "sema-arity-mismatch"
	// SemaNotAStruct: a MemberAccess's object is not a struct type.
	SemaNotAStruct Code = "sema-not-a-struct"
	// SemaUnknownMember: a MemberAccess named a field the struct lacks.
	SemaUnknownMember Code = "sema-unknown-member"
	// SemaNotAnArray: an Index's object is not an array type.
	SemaNotAnArray Code = "sema-not-an-array"
	// SemaIndexNotInt: an Index's subscript expression is not int-typed.
	SemaIndexNotInt Code = "sema-index-not-int"
	// SemaInvalidLValue: the left side of '=' is not a variable, member
	// access, or index expression.
	SemaInvalidLValue Code = "sema-invalid-lvalue"

	// CodegenMissingFunction: CodeGen could not find a callee's IR function.
	CodegenMissingFunction Code = "codegen-missing-function"
	// CodegenMissingVariable: CodeGen could not find a variable's stack slot.
	CodegenMissingVariable Code = "codegen-missing-variable"
	// CodegenArityMismatch: a call's IR function has a different arity.
	CodegenArityMismatch Code = "codegen-arity-mismatch"
)
