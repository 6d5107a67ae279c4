package primitives

import "github.com/anselm67/scheme/interp"

func compare2(name string, args []interp.Value, pred func(a, b float64) bool) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Nil, interp.NewArgCountError("%s: expects exactly 2 arguments, got %d", name, len(args))
	}
	if err := requireNumbers(name, args); err != nil {
		return interp.Nil, err
	}
	return interp.BoolValue(pred(numericValue(args[0]), numericValue(args[1]))), nil
}

func numEqual(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return compare2("=", args, func(a, b float64) bool { return a == b })
}

func lessThan(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return compare2("<", args, func(a, b float64) bool { return a < b })
}

func greaterThan(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return compare2(">", args, func(a, b float64) bool { return a > b })
}

func lessOrEqual(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return compare2("<=", args, func(a, b float64) bool { return a <= b })
}

func greaterOrEqual(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return compare2(">=", args, func(a, b float64) bool { return a >= b })
}

// extremum implements max/min: one or more numbers (spec §4.6),
// promoting the result to Float the moment any operand seen so far
// was Float, matching the promotion rule arithmetic uses.
func extremum(name string, args []interp.Value, better func(a, b float64) bool) (interp.Value, error) {
	if len(args) == 0 {
		return interp.Nil, interp.NewArgCountError("%s: expects at least 1 argument", name)
	}
	if err := requireNumbers(name, args); err != nil {
		return interp.Nil, err
	}
	best := args[0]
	bestF := numericValue(best)
	anyFloat := best.Kind == interp.KindFloat
	for _, a := range args[1:] {
		if a.Kind == interp.KindFloat {
			anyFloat = true
		}
		if better(numericValue(a), bestF) {
			best, bestF = a, numericValue(a)
		}
	}
	if anyFloat {
		return interp.FloatValue(bestF), nil
	}
	return best, nil
}

func max_(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return extremum("max", args, func(a, b float64) bool { return a > b })
}

func min_(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return extremum("min", args, func(a, b float64) bool { return a < b })
}

func isNumber(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("number?: expects exactly 1 argument, got %d", len(args))
	}
	return interp.BoolValue(args[0].IsNumber()), nil
}

func isInteger(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("integer?: expects exactly 1 argument, got %d", len(args))
	}
	return interp.BoolValue(args[0].Kind == interp.KindInteger), nil
}

func isFloat(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("float?: expects exactly 1 argument, got %d", len(args))
	}
	return interp.BoolValue(args[0].Kind == interp.KindFloat), nil
}

// Comparison is the table entry for package register.go.
var Comparison = map[string]interp.PrimitiveFunc{
	"=":        numEqual,
	"<":        lessThan,
	">":        greaterThan,
	"<=":       lessOrEqual,
	">=":       greaterOrEqual,
	"max":      max_,
	"min":      min_,
	"number?":  isNumber,
	"integer?": isInteger,
	"float?":   isFloat,
}
