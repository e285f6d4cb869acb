package ast

// Module is a parsed compilation unit: its function declarations, struct
// declarations and free statements, each list kept in source order.
type Module struct {
	Functions []*FunctionDecl
	Structs   []*StructDecl
	// TopLevel holds every statement written outside of a function or
	// struct body, in source order; CodeGen hoists these into the
	// implicit entry function.
	TopLevel []Stmt
}
