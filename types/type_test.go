package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	a, b := Var("a"), Var("b")
	testCases := []struct {
		t        PolyType
		expected string
	}{
		{Number, "Number"},
		{a, "a"},
		{Arrow(Number, Bool), "Number -> Bool"},
		{Arrows(Number, Number, Number), "Number -> Number -> Number"},
		{Arrow(Arrow(a, b), ArrayOf(b)), "(a -> b) -> [b]"},
		{ArrayOf(ArrayOf(String)), "[[String]]"},
		{Either(Number, String), "Either Number String"},
		{Either(Number, Number), "Number"},
		{Either(ArrayOf(a), Arrow(a, Null)), "Either [a] (a -> Null)"},
		{Either(Either(Number, Number), Null), "Either Number Null"},
		{Forall(Arrow(a, a), "a"), "∀a. a -> a"},
		{Forall(Arrows(a, b, Either(a, b)), "a", "b"), "∀a b. a -> b -> Either a b"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.t.String())
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Arrow(Number, Var("a")).Equal(Arrow(Number, Var("a"))))
	assert.False(t, Arrow(Number, Var("a")).Equal(Arrow(Number, Var("b"))))
	assert.False(t, Number.Equal(String))
	assert.False(t, Var("Number").Equal(Number))
	assert.False(t, TypeApplication{Constructor: ArrayFunc}.Equal(ArrayOf(Number)))
	// structural equality does not simplify
	assert.False(t, Either(Number, Number).Equal(Number))
}

func TestNewTypeApplicationCollapsesEither(t *testing.T) {
	assert.Equal(t, Number, NewTypeApplication(EitherFunc, Number, Number))
	assert.Equal(t, Either(Number, Null), NewTypeApplication(EitherFunc, Number, Null))
	assert.Equal(t, ArrayOf(Bool), NewTypeApplication(ArrayFunc, Bool))
}

func TestForallOrder(t *testing.T) {
	scheme := Forall(Arrow(Var("a"), Var("b")), "a", "b")
	outer, ok := scheme.(TypeQuantifier)
	assert.True(t, ok)
	assert.Equal(t, "a", outer.Bound)
	inner, ok := outer.Body.(TypeQuantifier)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Bound)
	assert.Equal(t, Arrow(Var("a"), Var("b")), inner.Body)
}

func TestFreeVariables(t *testing.T) {
	a, b, c := Var("a"), Var("b"), Var("c")
	assert.Equal(t, []string{"a"}, []string(FreeVariables(a)))
	assert.Empty(t, FreeVariables(Number))
	assert.Equal(t, []string{"a", "b", "c"}, []string(FreeVariables(Arrows(c, a, b, a))))
	assert.Equal(t, []string{"b"}, []string(FreeVariables(Forall(Arrow(a, b), "a"))))
	assert.Empty(t, FreeVariables(Forall(Arrow(a, b), "a", "b")))

	ctx := NewContext(map[string]PolyType{
		"id": Forall(Arrow(a, a), "a"),
		"x":  b,
		"f":  Arrow(c, Number),
	})
	assert.Equal(t, []string{"b", "c"}, []string(ctx.FreeVariables()))
	y, _ := ctx.With("y", Arrow(c, c)).Get("y")
	assert.True(t, Occurs("c", y))
	assert.False(t, Occurs("a", mustGet(t, ctx, "id")))
}

func TestExpressionString(t *testing.T) {
	expr := &Let{
		Name:  "id",
		Bound: &Abstraction{Parameter: "x", Body: &Variable{Name: "x"}},
		Body:  Call(&Variable{Name: "pair"}, Call(&Variable{Name: "id"}, &NumberLiteral{Value: 1.5}), &StringLiteral{Value: "s"}),
	}
	assert.Equal(t, `(let id = (λx. x) in (pair (id 1.5) "s"))`, expr.String())
}

func mustGet(t *testing.T, ctx Context, name string) PolyType {
	got, ok := ctx.Get(name)
	if !ok {
		t.Fatalf("%s is not bound in %s", name, ctx)
	}
	return got
}
