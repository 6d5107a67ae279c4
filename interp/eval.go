package interp

// Eval implements the reduction rules of spec §4.5. It is the single
// entry point every special form and Apply recurse back through.
func Eval(i *Interpreter, v Value, env *Env) (Value, error) {
	switch v.Kind {
	case KindInteger, KindFloat, KindBoolean, KindChar, KindNil:
		return v, nil
	case KindHeapRef:
		obj, err := i.Heap.Get(v.Ref)
		if err != nil {
			return Nil, err
		}
		switch o := obj.(type) {
		case *symbolObject:
			val, ok := env.Lookup(v.Ref)
			if !ok {
				return Nil, newUnboundVariable("unbound variable %q", o.name)
			}
			return val, nil
		case *pairObject:
			return evalCombination(i, o, env)
		case *stringObject, *primitiveObject, *closureObject:
			return v, nil
		case *freeSlotObject:
			return Nil, newImplementationError("evaluated a free heap slot")
		default:
			return Nil, newImplementationError("unrecognized heap object")
		}
	default:
		return Nil, newImplementationError("unrecognized value kind %d", v.Kind)
	}
}

// evalCombination decomposes (op . args) and either dispatches a
// special form without evaluating args, or evaluates op and every
// argument left-to-right and applies (spec §4.5 rule 4).
func evalCombination(i *Interpreter, combination *pairObject, env *Env) (Value, error) {
	op := combination.car
	argsList := combination.cdr

	if op.Kind == KindHeapRef {
		if kw, ok := i.Heap.keywordID(op.Ref); ok {
			switch kw {
			case KeywordIf, KeywordDefine, KeywordLambda, KeywordQuote, KeywordSetBang:
				return evalSpecialForm(i, kw, argsList, env)
			}
			// KeywordTrue/KeywordFalse are reserved ids but never
			// reachable in operator position: the reader never
			// tokenizes "#t"/"#f" as a Symbol (spec §4.4).
		}
	}

	callee, err := Eval(i, op, env)
	if err != nil {
		return Nil, err
	}

	argValues, err := i.Heap.RequireProperList(argsList)
	if err != nil {
		return Nil, err
	}
	args := make([]Value, len(argValues))
	for idx, a := range argValues {
		av, err := Eval(i, a, env)
		if err != nil {
			return Nil, err
		}
		args[idx] = av
	}
	return Apply(i, callee, args)
}

func evalSpecialForm(i *Interpreter, kw keyword, argsList Value, env *Env) (Value, error) {
	args, err := i.Heap.RequireProperList(argsList)
	if err != nil {
		return Nil, err
	}
	switch kw {
	case KeywordIf:
		return evalIf(i, args, env)
	case KeywordDefine:
		return evalDefine(i, args, env)
	case KeywordLambda:
		return evalLambda(i, args, env)
	case KeywordQuote:
		return evalQuote(args)
	case KeywordSetBang:
		return evalSetBang(i, args, env)
	default:
		return Nil, newImplementationError("unhandled keyword %d", kw)
	}
}

func evalIf(i *Interpreter, args []Value, env *Env) (Value, error) {
	if len(args) != 3 {
		return Nil, newEvalError("if expects exactly 3 arguments, got %d", len(args))
	}
	cond, err := Eval(i, args[0], env)
	if err != nil {
		return Nil, err
	}
	if cond.IsTruthy() {
		return Eval(i, args[1], env)
	}
	return Eval(i, args[2], env)
}

func requireSymbol(i *Interpreter, v Value, context string) (HeapRef, error) {
	if v.Kind != KindHeapRef {
		return 0, newTypeError("%s: expected a symbol", context)
	}
	obj, err := i.Heap.Get(v.Ref)
	if err != nil {
		return 0, err
	}
	if _, ok := obj.(*symbolObject); !ok {
		return 0, newTypeError("%s: expected a symbol", context)
	}
	return v.Ref, nil
}

func evalDefine(i *Interpreter, args []Value, env *Env) (Value, error) {
	if len(args) != 2 {
		return Nil, newEvalError("define expects exactly 2 arguments, got %d", len(args))
	}
	sym, err := requireSymbol(i, args[0], "define")
	if err != nil {
		return Nil, err
	}
	val, err := Eval(i, args[1], env)
	if err != nil {
		return Nil, err
	}
	env.Define(sym, val)
	return val, nil
}

func evalSetBang(i *Interpreter, args []Value, env *Env) (Value, error) {
	if len(args) != 2 {
		return Nil, newEvalError("set! expects exactly 2 arguments, got %d", len(args))
	}
	sym, err := requireSymbol(i, args[0], "set!")
	if err != nil {
		return Nil, err
	}
	val, err := Eval(i, args[1], env)
	if err != nil {
		return Nil, err
	}
	if err := env.SetBang(sym, val); err != nil {
		return Nil, err
	}
	return val, nil
}

func evalLambda(i *Interpreter, args []Value, env *Env) (Value, error) {
	if len(args) < 2 {
		return Nil, newEvalError("lambda expects a parameter list and at least one body form")
	}
	paramValues, err := i.Heap.RequireProperList(args[0])
	if err != nil {
		return Nil, newTypeError("lambda: parameter list must be a proper list of symbols")
	}
	params := make([]HeapRef, len(paramValues))
	for idx, p := range paramValues {
		sym, err := requireSymbol(i, p, "lambda parameter")
		if err != nil {
			return Nil, err
		}
		params[idx] = sym
	}
	body := append([]Value(nil), args[1:]...)
	ref := i.Heap.AllocClosure(params, body, env)
	return RefValue(ref), nil
}

func evalQuote(args []Value) (Value, error) {
	if len(args) != 1 {
		return Nil, newEvalError("quote expects exactly 1 argument, got %d", len(args))
	}
	return args[0], nil
}

// Apply implements spec §4.5.2: a Primitive is invoked directly with
// the evaluated arguments; a Closure requires exact arity, extends
// its captured environment with a frame binding parameters
// positionally, and evaluates its body forms in order, returning the
// last one's value. Anything else is a TypeError.
func Apply(i *Interpreter, callee Value, args []Value) (Value, error) {
	if callee.Kind != KindHeapRef {
		return Nil, newTypeError("cannot apply a non-procedure value")
	}
	obj, err := i.Heap.Get(callee.Ref)
	if err != nil {
		return Nil, err
	}
	switch fn := obj.(type) {
	case *primitiveObject:
		return fn.fn(i, args)
	case *closureObject:
		if len(args) != len(fn.params) {
			return Nil, newArgCountError("closure expects %d arguments, got %d", len(fn.params), len(args))
		}
		frame := fn.env.Extend()
		for idx, p := range fn.params {
			frame.Define(p, args[idx])
		}
		var result Value = Nil
		for _, form := range fn.body {
			result, err = Eval(i, form, frame)
			if err != nil {
				return Nil, err
			}
		}
		return result, nil
	default:
		return Nil, newTypeError("cannot apply a non-procedure value")
	}
}
