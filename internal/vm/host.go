package vm

import "fmt"

// callHost implements the three host symbols an extern declaration may
// bind to. print_int/print_string both render "Output: <value>" and
// flush; malloc hands back a freshly allocated Addr with one Value cell
// per requested byte. Each cell holds a whole element, and
// internal/codegen's elemSize makes the byte count at least the element
// count, so the allocation always has room for every element.
func (vm *VM) callHost(name string, args []Value) (Value, error) {
	switch name {
	case "print_int":
		fmt.Fprintf(vm.out, "Output: %d\n", args[0].I)
		vm.out.Flush()
		return Value{}, nil
	case "print_string":
		fmt.Fprintf(vm.out, "Output: %s\n", args[0].Str)
		vm.out.Flush()
		return Value{}, nil
	case "malloc":
		n := args[0].I
		if n < 0 {
			n = 0
		}
		return addrVal(Addr{Cells: make([]Value, n)}), nil
	default:
		return Value{}, fmt.Errorf("undeclared host function: %s", name)
	}
}
