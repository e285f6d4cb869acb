package cache

import "pynext/internal/ir"

func toCachedType(t *ir.Type) cachedType {
	if t == nil {
		return cachedType{}
	}
	ct := cachedType{Kind: uint8(t.Kind), Name: t.Name}
	if t.Elem != nil {
		elem := toCachedType(t.Elem)
		ct.Elem = &elem
	}
	return ct
}

func fromCachedType(ct cachedType) *ir.Type {
	t := &ir.Type{Kind: ir.TypeKind(ct.Kind), Name: ct.Name}
	if ct.Elem != nil {
		t.Elem = fromCachedType(*ct.Elem)
	}
	return t
}

func toCachedValue(v *ir.Value) cachedValue {
	if v == nil {
		return cachedValue{Kind: 255}
	}
	return cachedValue{
		Kind:        uint8(v.Kind),
		ID:          v.ID,
		Type:        toCachedType(v.Type),
		ConstInt:    v.ConstInt,
		ConstFloat:  v.ConstFloat,
		ConstBool:   v.ConstBool,
		ConstString: v.ConstString,
		Name:        v.Name,
	}
}

func fromCachedValue(cv cachedValue) *ir.Value {
	if cv.Kind == 255 {
		return nil
	}
	return &ir.Value{
		Kind:        ir.ValueKind(cv.Kind),
		ID:          cv.ID,
		Type:        fromCachedType(cv.Type),
		ConstInt:    cv.ConstInt,
		ConstFloat:  cv.ConstFloat,
		ConstBool:   cv.ConstBool,
		ConstString: cv.ConstString,
		Name:        cv.Name,
	}
}

// blockIndex maps a Func's basic blocks to their position, so a
// Terminator's Target/Else pointers can be stored as plain ints instead
// of re-entering the cyclic pointer graph.
func blockIndex(blocks []*ir.Block) map[*ir.Block]int {
	idx := make(map[*ir.Block]int, len(blocks))
	for i, b := range blocks {
		idx[b] = i
	}
	return idx
}

func toCachedFunc(f *ir.Func) cachedFunc {
	cf := cachedFunc{
		Name:       f.Name,
		ResultType: toCachedType(f.ResultType),
		Extern:     f.Extern,
	}
	for _, p := range f.Params {
		cf.Params = append(cf.Params, toCachedValue(p))
	}
	idx := blockIndex(f.Blocks)
	for _, b := range f.Blocks {
		cb := cachedBlock{Name: b.Name}
		for _, in := range b.Instrs {
			ci := cachedInstr{
				Op:         uint8(in.Op),
				HasDst:     in.Dst != nil,
				Dst:        toCachedValue(in.Dst),
				FieldIndex: in.FieldIndex,
			}
			if in.AllocType != nil {
				ci.HasAlloc = true
				ci.AllocType = toCachedType(in.AllocType)
			}
			for _, a := range in.Args {
				ci.Args = append(ci.Args, toCachedValue(a))
			}
			cb.Instrs = append(cb.Instrs, ci)
		}
		ct := cachedTerm{Kind: uint8(b.Term.Kind), TargetIdx: -1, ElseIdx: -1}
		if b.Term.Value != nil {
			ct.HasValue = true
			ct.Value = toCachedValue(b.Term.Value)
		}
		if b.Term.Cond != nil {
			ct.HasCond = true
			ct.Cond = toCachedValue(b.Term.Cond)
		}
		if b.Term.Target != nil {
			ct.TargetIdx = idx[b.Term.Target]
		}
		if b.Term.Else != nil {
			ct.ElseIdx = idx[b.Term.Else]
		}
		cb.Term = ct
		cf.Blocks = append(cf.Blocks, cb)
	}
	return cf
}

func fromCachedFunc(cf cachedFunc) *ir.Func {
	f := &ir.Func{
		Name:       cf.Name,
		ResultType: fromCachedType(cf.ResultType),
		Extern:     cf.Extern,
	}
	for _, p := range cf.Params {
		f.Params = append(f.Params, fromCachedValue(p))
	}
	blocks := make([]*ir.Block, len(cf.Blocks))
	for i, cb := range cf.Blocks {
		blocks[i] = &ir.Block{Name: cb.Name}
	}
	for i, cb := range cf.Blocks {
		b := blocks[i]
		for _, ci := range cb.Instrs {
			in := ir.Instr{Op: ir.Op(ci.Op), FieldIndex: ci.FieldIndex}
			if ci.HasDst {
				in.Dst = fromCachedValue(ci.Dst)
			}
			if ci.HasAlloc {
				in.AllocType = fromCachedType(ci.AllocType)
			}
			for _, a := range ci.Args {
				in.Args = append(in.Args, fromCachedValue(a))
			}
			b.Instrs = append(b.Instrs, in)
		}
		term := ir.Terminator{Kind: ir.TermKind(cb.Term.Kind)}
		if cb.Term.HasValue {
			term.Value = fromCachedValue(cb.Term.Value)
		}
		if cb.Term.HasCond {
			term.Cond = fromCachedValue(cb.Term.Cond)
		}
		if cb.Term.TargetIdx >= 0 {
			term.Target = blocks[cb.Term.TargetIdx]
		}
		if cb.Term.ElseIdx >= 0 {
			term.Else = blocks[cb.Term.ElseIdx]
		}
		b.Term = term
	}
	f.Blocks = blocks
	return f
}

func toCachedStruct(s *ir.StructLayout) cachedStruct {
	cs := cachedStruct{Name: s.Name, FieldNames: s.FieldNames}
	for _, t := range s.FieldTypes {
		cs.FieldTypes = append(cs.FieldTypes, toCachedType(t))
	}
	return cs
}

func fromCachedStruct(cs cachedStruct) *ir.StructLayout {
	s := &ir.StructLayout{Name: cs.Name, FieldNames: cs.FieldNames}
	for _, t := range cs.FieldTypes {
		s.FieldTypes = append(s.FieldTypes, fromCachedType(t))
	}
	return s
}

// Encode flattens mod into its cacheable schema form.
func Encode(mod *ir.Module) CachedModule {
	cm := CachedModule{Schema: schemaVersion}
	for _, f := range mod.Funcs {
		cm.Funcs = append(cm.Funcs, toCachedFunc(f))
	}
	for _, s := range mod.Structs {
		cm.Structs = append(cm.Structs, toCachedStruct(s))
	}
	return cm
}

// Decode rebuilds an ir.Module's pointer graph from its schema form.
func Decode(cm CachedModule) *ir.Module {
	mod := &ir.Module{}
	for _, cf := range cm.Funcs {
		mod.Funcs = append(mod.Funcs, fromCachedFunc(cf))
	}
	for _, cs := range cm.Structs {
		mod.Structs = append(mod.Structs, fromCachedStruct(cs))
	}
	return mod
}
