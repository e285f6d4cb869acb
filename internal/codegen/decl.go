package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/ir"
)

// lowerStructDecl creates a named IR aggregate with field types in
// declaration order, and records the field-name -> index map CodeGen
// needs for member-access GEPs. Struct lowering runs before any function
// is declared, so a struct field may itself reference another struct
// declared earlier in the module.
func (g *CodeGen) lowerStructDecl(sd *ast.StructDecl) {
	layout := &ir.StructLayout{Name: sd.Name}
	for _, f := range sd.Fields {
		layout.FieldNames = append(layout.FieldNames, f.Name)
		layout.FieldTypes = append(layout.FieldTypes, g.mapTypeName(&f.Type))
	}
	g.structTypes[sd.Name] = layout
	g.mod.Structs = append(g.mod.Structs, layout)
}

// declareFunction constructs the IR function type from the declaration's
// parameter and return type names and adds it to the module with
// external linkage. An extern declaration gets no blocks.
func (g *CodeGen) declareFunction(fd *ast.FunctionDecl) *ir.Func {
	params := make([]*ir.Value, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = &ir.Value{Kind: ir.ParamValue, Type: g.mapTypeName(&p.Type), Name: p.Name}
	}
	fn := &ir.Func{
		Name:       fd.Name,
		Params:     params,
		ResultType: g.mapTypeName(fd.ReturnType),
		Extern:     fd.Extern,
	}
	g.mod.Funcs = append(g.mod.Funcs, fn)
	return fn
}
