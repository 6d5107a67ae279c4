package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorRenderingMatchesKindMessageForm(t *testing.T) {
	err := newTypeError("car: expected a pair")
	assert.Equal(t, "TypeError(car: expected a pair)", err.Error())
}

func TestSyntaxErrorIncludesPosition(t *testing.T) {
	h := NewHeap()
	r := NewReader(strings.NewReader(")"), h)
	_, err := r.Read()
	assert.Contains(t, err.Error(), "SyntaxError(")
	assert.Contains(t, err.Error(), ":")
}

func TestExportedConstructorsMatchKind(t *testing.T) {
	assert.Equal(t, TypeError, NewTypeError("x").(*SchemeError).Kind)
	assert.Equal(t, ArgCountError, NewArgCountError("x").(*SchemeError).Kind)
	assert.Equal(t, OverflowError, NewOverflowError("x").(*SchemeError).Kind)
	assert.Equal(t, EvalError, NewEvalError("x").(*SchemeError).Kind)
	assert.Equal(t, UnboundVariable, NewUnboundVariable("x").(*SchemeError).Kind)
}
