package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineThenLookup(t *testing.T) {
	h := NewHeap()
	env := NewGlobalEnv()
	x := h.InternSymbol("x")

	env.Define(x, IntValue(42))

	v, ok := env.Lookup(x)
	require.True(t, ok)
	assert.Equal(t, int64(42), v.I)
}

func TestLookupWalksParentChain(t *testing.T) {
	h := NewHeap()
	global := NewGlobalEnv()
	x := h.InternSymbol("x")
	global.Define(x, IntValue(1))

	child := global.Extend()
	v, ok := child.Lookup(x)
	require.True(t, ok)
	assert.Equal(t, int64(1), v.I)
}

func TestDefineShadowsInChildFrameOnly(t *testing.T) {
	h := NewHeap()
	global := NewGlobalEnv()
	x := h.InternSymbol("x")
	global.Define(x, IntValue(1))

	child := global.Extend()
	child.Define(x, IntValue(2))

	childVal, _ := child.Lookup(x)
	globalVal, _ := global.Lookup(x)
	assert.Equal(t, int64(2), childVal.I)
	assert.Equal(t, int64(1), globalVal.I, "shadowing in a child frame must not mutate the parent")
}

func TestSetBangRequiresPriorBinding(t *testing.T) {
	h := NewHeap()
	env := NewGlobalEnv()
	y := h.InternSymbol("y")

	err := env.SetBang(y, IntValue(1))
	require.Error(t, err)
	var se *SchemeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, UnboundVariable, se.Kind)
}

func TestSetBangMutatesAncestorFrame(t *testing.T) {
	h := NewHeap()
	global := NewGlobalEnv()
	x := h.InternSymbol("x")
	global.Define(x, IntValue(1))

	child := global.Extend()
	require.NoError(t, child.SetBang(x, IntValue(99)))

	v, _ := global.Lookup(x)
	assert.Equal(t, int64(99), v.I, "set! on an inherited binding mutates the frame that owns it")

	_, ok := child.bindings[x]
	assert.False(t, ok, "set! must not create a new binding in the calling frame")
}
