package ir

// Func is a function definition or, for Extern, a declaration-only
// prototype with no blocks.
type Func struct {
	Name       string
	Params     []*Value // ParamValue-kind values, in declaration order
	ResultType *Type
	Blocks     []*Block
	Extern     bool
}

// EntryBlock returns the function's first block, or nil if it has none
// (an extern declaration).
func (f *Func) EntryBlock() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}
