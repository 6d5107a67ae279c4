// Package primitives implements the built-in procedure table of spec
// §4.6: arithmetic, comparison, list, and system primitives over the
// interp package's Value/Heap/Interpreter types. Grounded on the
// teacher's stdlib-as-a-table pattern (interp.Use(stdlib.Value) in
// breadchris-yaegi), generalized here to a flat name->PrimitiveFunc
// map installed with Interpreter.Use.
package primitives

import (
	"math"

	"github.com/anselm67/scheme/interp"
)

func requireNumbers(name string, args []interp.Value) error {
	for idx, a := range args {
		if !a.IsNumber() {
			return interp.NewTypeError("%s: argument %d is not a number", name, idx+1)
		}
	}
	return nil
}

// add implements +: zero or more numbers, identity 0, promoting to
// Float the moment any operand is Float (spec §4.6).
func add(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if err := requireNumbers("+", args); err != nil {
		return interp.Nil, err
	}
	allInt := true
	var fsum float64
	var isum int64
	for _, a := range args {
		if a.Kind != interp.KindInteger {
			allInt = false
		}
		fsum += numericValue(a)
		if a.Kind == interp.KindInteger {
			isum += a.I
		}
	}
	if allInt {
		return interp.IntValue(isum), nil
	}
	return interp.FloatValue(fsum), nil
}

// sub implements -: one arg negates, two or more fold left (spec
// §4.6).
func sub(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if err := requireNumbers("-", args); err != nil {
		return interp.Nil, err
	}
	if len(args) == 0 {
		return interp.Nil, interp.NewArgCountError("-: expects at least 1 argument")
	}
	if len(args) == 1 {
		return negate(args[0]), nil
	}
	acc := args[0]
	for _, a := range args[1:] {
		acc = arith(acc, a, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })
	}
	return acc, nil
}

// mul implements *: zero or more numbers, identity 1 (spec §4.6).
func mul(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if err := requireNumbers("*", args); err != nil {
		return interp.Nil, err
	}
	allInt := true
	fprod := 1.0
	iprod := int64(1)
	for _, a := range args {
		if a.Kind != interp.KindInteger {
			allInt = false
		}
		fprod *= numericValue(a)
		if a.Kind == interp.KindInteger {
			iprod *= a.I
		}
	}
	if allInt {
		return interp.IntValue(iprod), nil
	}
	return interp.FloatValue(fprod), nil
}

// div implements /: one arg computes 1/x, two or more fold left;
// division always promotes to Float regardless of operand kinds
// (spec §4.6).
func div(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if err := requireNumbers("/", args); err != nil {
		return interp.Nil, err
	}
	if len(args) == 0 {
		return interp.Nil, interp.NewArgCountError("/: expects at least 1 argument")
	}
	if len(args) == 1 {
		return interp.FloatValue(1 / numericValue(args[0])), nil
	}
	acc := numericValue(args[0])
	for _, a := range args[1:] {
		acc /= numericValue(a)
	}
	return interp.FloatValue(acc), nil
}

// mod implements %: exactly two numbers, Integer%Integer stays
// Integer, any Float operand yields a Float remainder (spec §4.6).
func mod(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Nil, interp.NewArgCountError("%%: expects exactly 2 arguments, got %d", len(args))
	}
	if err := requireNumbers("%", args); err != nil {
		return interp.Nil, err
	}
	a, b := args[0], args[1]
	if a.Kind == interp.KindInteger && b.Kind == interp.KindInteger {
		if b.I == 0 {
			return interp.Nil, interp.NewEvalError("%%: division by zero")
		}
		return interp.IntValue(a.I % b.I), nil
	}
	return interp.FloatValue(math.Mod(numericValue(a), numericValue(b))), nil
}

func numericValue(v interp.Value) float64 {
	if v.Kind == interp.KindInteger {
		return float64(v.I)
	}
	return v.F
}

func negate(v interp.Value) interp.Value {
	if v.Kind == interp.KindInteger {
		return interp.IntValue(-v.I)
	}
	return interp.FloatValue(-v.F)
}

func arith(a, b interp.Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) interp.Value {
	if a.Kind == interp.KindInteger && b.Kind == interp.KindInteger {
		return interp.IntValue(intOp(a.I, b.I))
	}
	return interp.FloatValue(floatOp(numericValue(a), numericValue(b)))
}

// Arithmetic is the table entry for package register.go to merge into
// the global primitive namespace.
var Arithmetic = map[string]interp.PrimitiveFunc{
	"+": add,
	"-": sub,
	"*": mul,
	"/": div,
	"%": mod,
}
