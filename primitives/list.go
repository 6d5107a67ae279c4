package primitives

import "github.com/anselm67/scheme/interp"

// list constructs a list from its arguments, in order (spec §4.6).
func list(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return i.Heap.AllocList(args), nil
}

// isListPrim implements list?: true for any cons chain including Nil.
func isListPrim(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("list?: expects exactly 1 argument, got %d", len(args))
	}
	return interp.BoolValue(i.Heap.IsList(args[0])), nil
}

func isNull(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("null?: expects exactly 1 argument, got %d", len(args))
	}
	return interp.BoolValue(args[0].Kind == interp.KindNil), nil
}

func cons(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Nil, interp.NewArgCountError("cons: expects exactly 2 arguments, got %d", len(args))
	}
	return interp.RefValue(i.Heap.AllocPair(args[0], args[1])), nil
}

func car(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("car: expects exactly 1 argument, got %d", len(args))
	}
	head, _, err := i.Heap.DecomposePair(args[0])
	if err != nil {
		return interp.Nil, interp.NewTypeError("car: expected a pair")
	}
	return head, nil
}

func cdr(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("cdr: expects exactly 1 argument, got %d", len(args))
	}
	_, tail, err := i.Heap.DecomposePair(args[0])
	if err != nil {
		return interp.Nil, interp.NewTypeError("cdr: expected a pair")
	}
	return tail, nil
}

// List is the table entry for package register.go.
var List = map[string]interp.PrimitiveFunc{
	"list":  list,
	"list?": isListPrim,
	"null?": isNull,
	"cons":  cons,
	"car":   car,
	"cdr":   cdr,
}
