package primitives

import "github.com/anselm67/scheme/interp"

// All merges every primitive table into the one flat map
// Interpreter.Use installs, mirroring the teacher's per-package
// Exports table merged into a single symbol table at interp.Use time
// (breadchris-yaegi/interp, stdlib.Symbols).
func All() map[string]interp.PrimitiveFunc {
	table := make(map[string]interp.PrimitiveFunc, len(Arithmetic)+len(Comparison)+len(List)+len(System))
	for _, src := range []map[string]interp.PrimitiveFunc{Arithmetic, Comparison, List, System} {
		for name, fn := range src {
			table[name] = fn
		}
	}
	return table
}
