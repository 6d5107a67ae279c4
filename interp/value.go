package interp

import "math"

// ValueKind tags the variant held by a Value. See spec §3.
type ValueKind uint8

const (
	KindInteger ValueKind = iota
	KindFloat
	KindBoolean
	KindChar
	KindNil
	KindHeapRef
)

// HeapRef is an opaque identifier into a Heap. It never dangles for
// the lifetime of the Heap that produced it (spec §3 invariant 3).
type HeapRef int

// Value is the immediate, copyable tagged union the whole interpreter
// passes by value: an inline scalar, or a handle into the Heap.
type Value struct {
	Kind ValueKind
	I    int64
	F    float64
	B    bool
	C    rune
	Ref  HeapRef
}

// Nil is the canonical empty-list / absence-of-value immediate.
var Nil = Value{Kind: KindNil}

func IntValue(i int64) Value     { return Value{Kind: KindInteger, I: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, F: f} }
func BoolValue(b bool) Value     { return Value{Kind: KindBoolean, B: b} }
func CharValue(c rune) Value     { return Value{Kind: KindChar, C: c} }
func RefValue(id HeapRef) Value  { return Value{Kind: KindHeapRef, Ref: id} }

// IsTruthy implements the truthiness rule spec §9 settles on: #f is
// the sole false value; Nil, 0 and every heap object are truthy.
func (v Value) IsTruthy() bool {
	return v.Kind != KindBoolean || v.B
}

func (v Value) IsNumber() bool {
	return v.Kind == KindInteger || v.Kind == KindFloat
}

// asFloat returns the numeric value of an Integer or Float Value.
func (v Value) asFloat() float64 {
	if v.Kind == KindInteger {
		return float64(v.I)
	}
	return v.F
}

// numericEqual implements the coercion rule of spec §4.6: Integer ==
// Float holds when the float is exactly representable as that
// integer.
func numericEqual(a, b Value) bool {
	if a.Kind == KindInteger && b.Kind == KindInteger {
		return a.I == b.I
	}
	if a.Kind == KindFloat && b.Kind == KindFloat {
		return a.F == b.F
	}
	// Mixed mode: compare the float against the integer's exact value.
	var fv float64
	var iv int64
	if a.Kind == KindInteger {
		iv, fv = a.I, b.F
	} else {
		iv, fv = b.I, a.F
	}
	if math.Trunc(fv) != fv {
		return false
	}
	return float64(iv) == fv
}

// Equal is structural equality over the tag plus payload, with the
// numeric coercion rule of spec §4.6 applied when both operands are
// numbers. HeapRef equality is by identity (same allocation), which
// is sufficient for the testable properties in spec §8: interning
// guarantees equal symbol names share a HeapRef.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		return numericEqual(a, b)
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBoolean:
		return a.B == b.B
	case KindChar:
		return a.C == b.C
	case KindNil:
		return true
	case KindHeapRef:
		return a.Ref == b.Ref
	default:
		return false
	}
}
