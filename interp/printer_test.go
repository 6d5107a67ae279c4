package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintScalars(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	assert.Equal(t, "42", Print(i, IntValue(42)))
	assert.Equal(t, "-7", Print(i, IntValue(-7)))
	assert.Equal(t, "#t", Print(i, BoolValue(true)))
	assert.Equal(t, "#f", Print(i, BoolValue(false)))
	assert.Equal(t, "()", Print(i, Nil))
}

func TestPrintFloatAlwaysHasFractionalDigit(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	assert.Equal(t, "5.0", Print(i, FloatValue(5)))
	assert.Equal(t, "2.5", Print(i, FloatValue(2.5)))
}

func TestPrintStringEscapesQuotesAndBackslashes(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	ref := i.Heap.AllocString(`say "hi"\now`)
	assert.Equal(t, `"say \"hi\"\\now"`, Print(i, RefValue(ref)))
}

func TestPrintList(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	v := i.Heap.AllocList([]Value{IntValue(1), IntValue(2), IntValue(3)})
	assert.Equal(t, "(1 2 3)", Print(i, v))
}

func TestPrintImproperList(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	v := RefValue(i.Heap.AllocPair(IntValue(1), IntValue(2)))
	assert.Equal(t, "(1 . 2)", Print(i, v))
}

func TestPrintSymbol(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	ref := i.Heap.InternSymbol("foo")
	assert.Equal(t, "foo", Print(i, RefValue(ref)))
}

func TestPrintClosureAndPrimitive(t *testing.T) {
	i := &Interpreter{Heap: NewHeap()}
	closureRef := i.Heap.AllocClosure(nil, nil, NewGlobalEnv())
	assert.Contains(t, Print(i, RefValue(closureRef)), "closure")

	primRef := i.Heap.AllocPrimitive("noop", func(_ *Interpreter, _ []Value) (Value, error) { return Nil, nil })
	assert.Contains(t, Print(i, RefValue(primRef)), "primitive")
}
