package primitives

import "github.com/anselm67/scheme/interp"

// terminate implements quit/exit: exactly one integer argument,
// unwinding the evaluator with interp.ExitError. Status codes outside
// [MinExitCode, MaxExitCode] are an OverflowError (spec §4.6, resolved
// range documented in DESIGN.md).
func terminate(name string, args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Nil, interp.NewArgCountError("%s: expects exactly 1 argument, got %d", name, len(args))
	}
	if args[0].Kind != interp.KindInteger {
		return interp.Nil, interp.NewTypeError("%s: expected an integer status", name)
	}
	code := args[0].I
	if code < interp.MinExitCode || code > interp.MaxExitCode {
		return interp.Nil, interp.NewOverflowError("%s: status %d out of range [%d, %d]", name, code, interp.MinExitCode, interp.MaxExitCode)
	}
	return interp.Nil, &interp.ExitError{Code: int(code)}
}

func quit(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return terminate("quit", args)
}

func exit(i *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return terminate("exit", args)
}

// System is the table entry for package register.go.
var System = map[string]interp.PrimitiveFunc{
	"quit": quit,
	"exit": exit,
}
