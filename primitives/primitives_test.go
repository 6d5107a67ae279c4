package primitives

import (
	"testing"

	"github.com/anselm67/scheme/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(t *testing.T) *interp.Interpreter {
	t.Helper()
	i := interp.New(interp.Options{})
	i.Use(All())
	return i
}

func evalString(t *testing.T, i *interp.Interpreter, src string) interp.Value {
	t.Helper()
	v, err := i.EvalString(src)
	require.NoError(t, err, src)
	return v
}

func TestArithmetic(t *testing.T) {
	i := newTestInterpreter(t)
	cases := []struct {
		src  string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(- 5)", "-5"},
		{"(- 10 3 2)", "5"},
		{"(/ 2)", "0.5"},
		{"(/ 4 2)", "2.0"},
		{"(/ 1 2 2)", "0.25"},
		{"(% 10 3)", "1"},
		{"(% 7.5 2)", "1.5"},
		{"(% -7.5 2)", "-1.5"},
		{"(% 5.0 -2)", "1.0"},
		{"(+ 1 2.0)", "3.0"},
	}
	for _, c := range cases {
		v := evalString(t, i, c.src)
		assert.Equal(t, c.want, interp.Print(i, v), c.src)
	}
}

func TestArithmeticTypeErrorOnNonNumber(t *testing.T) {
	i := newTestInterpreter(t)
	_, err := i.EvalString(`(+ 1 "x")`)
	require.Error(t, err)
	requireKind(t, err, "TypeError")
}

func TestComparisonAndPredicates(t *testing.T) {
	i := newTestInterpreter(t)
	cases := []struct {
		src  string
		want string
	}{
		{"(= 1 1)", "#t"},
		{"(= 1 2)", "#f"},
		{"(< 1 2)", "#t"},
		{"(> 1 2)", "#f"},
		{"(<= 2 2)", "#t"},
		{"(>= 1 2)", "#f"},
		{"(max 1 5 3)", "5"},
		{"(min 1 5 3)", "1"},
		{"(max 1 5.0 3)", "5.0"},
		{"(number? 1)", "#t"},
		{"(number? #t)", "#f"},
		{"(integer? 1)", "#t"},
		{"(integer? 1.0)", "#f"},
		{"(float? 1.0)", "#t"},
	}
	for _, c := range cases {
		v := evalString(t, i, c.src)
		assert.Equal(t, c.want, interp.Print(i, v), c.src)
	}
}

func TestListPrimitives(t *testing.T) {
	i := newTestInterpreter(t)
	cases := []struct {
		src  string
		want string
	}{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list? (list 1 2))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(null? (list))", "#t"},
		{"(null? (list 1))", "#f"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
		{"(car '(1 2))", "1"},
		{"(car (cdr '(1 2)))", "2"},
	}
	for _, c := range cases {
		v := evalString(t, i, c.src)
		assert.Equal(t, c.want, interp.Print(i, v), c.src)
	}
}

func TestCarOnNonPairIsTypeError(t *testing.T) {
	i := newTestInterpreter(t)
	_, err := i.EvalString("(car 5)")
	require.Error(t, err)
	requireKind(t, err, "TypeError")
}

func TestQuitInRangeUnwindsWithExitError(t *testing.T) {
	i := newTestInterpreter(t)
	_, err := i.EvalString("(quit 3)")
	require.Error(t, err)
	ee, ok := err.(*interp.ExitError)
	require.True(t, ok)
	assert.Equal(t, 3, ee.Code)
}

func TestExitOutOfRangeIsOverflowError(t *testing.T) {
	i := newTestInterpreter(t)
	_, err := i.EvalString("(exit 1000)")
	require.Error(t, err)
	requireKind(t, err, "OverflowError")
}

func requireKind(t *testing.T, err error, kind string) {
	t.Helper()
	assert.Contains(t, err.Error(), kind+"(")
}
