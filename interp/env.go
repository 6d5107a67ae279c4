package interp

// Env is one frame of the lexically scoped environment chain (spec
// §3, §4.3): a mapping from symbol HeapRef to Value, plus an optional
// parent. The topmost, ancestor-less frame is the global environment.
// Frames are shared (multiple closures may hold the same captured
// parent) and mutable (define/set! write through a shared pointer),
// which is why Env is always handled by pointer.
type Env struct {
	parent   *Env
	bindings map[HeapRef]Value
}

// NewGlobalEnv creates the ancestor-less global frame, built once at
// interpreter startup (spec §3).
func NewGlobalEnv() *Env {
	return &Env{bindings: make(map[HeapRef]Value)}
}

// Extend creates a new, empty child frame whose parent is e.
func (e *Env) Extend() *Env {
	return &Env{parent: e, bindings: make(map[HeapRef]Value)}
}

// Define unconditionally inserts or overwrites a binding in the
// current frame only. Shadows any binding of the same name in an
// ancestor frame (spec §4.3).
func (e *Env) Define(sym HeapRef, v Value) {
	e.bindings[sym] = v
}

// SetBang walks the parent chain and updates the first frame that
// already binds sym, the only way a closure's captured state can be
// mutated after the closure was created. Fails if no frame in the
// chain binds sym (spec §4.3).
func (e *Env) SetBang(sym HeapRef, v Value) error {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[sym]; ok {
			frame.bindings[sym] = v
			return nil
		}
	}
	return newUnboundVariable("assignment to unbound variable")
}

// Lookup walks the parent chain and returns the nearest binding.
func (e *Env) Lookup(sym HeapRef) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[sym]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// heapRefs enumerates every HeapRef reachable from this frame chain:
// the bound symbol ids themselves plus any HeapRef payload of a bound
// Value, recursively through ancestor frames. A future GC would use
// this to treat live frames as roots alongside the global environment
// (spec §9).
func (e *Env) heapRefs() []HeapRef {
	var refs []HeapRef
	for frame := e; frame != nil; frame = frame.parent {
		for sym, v := range frame.bindings {
			refs = append(refs, sym)
			if v.Kind == KindHeapRef {
				refs = append(refs, v.Ref)
			}
		}
	}
	return refs
}
