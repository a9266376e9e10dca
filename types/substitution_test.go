package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMono(t *testing.T) {
	s := NewSubstitution(map[string]MonoType{
		"a": Number,
		"b": ArrayOf(Var("c")),
	})
	assert.Equal(t, Arrow(Number, ArrayOf(Var("c"))), s.ApplyMono(Arrow(Var("a"), Var("b"))))
	assert.Equal(t, Var("z"), s.ApplyMono(Var("z")))
	assert.Equal(t, String, s.ApplyMono(String))
	assert.Equal(t, Number, s.ApplyMono(Either(Var("a"), Number)), "Either with equal branches collapses")
}

func TestApplyPolyRespectsShadowing(t *testing.T) {
	s := NewSubstitution(map[string]MonoType{
		"a": Number,
		"b": String,
	})
	scheme := Forall(Arrow(Var("a"), Var("b")), "a")
	assert.Equal(t, Forall(Arrow(Var("a"), String), "a"), s.ApplyPoly(scheme))
}

func TestApplyContextDoesNotMutate(t *testing.T) {
	ctx := NewContext(map[string]PolyType{"x": Var("a")})
	applied := Singleton("a", Bool).ApplyContext(ctx)

	x, _ := applied.Get("x")
	assert.Equal(t, Bool, x)
	x, _ = ctx.Get("x")
	assert.Equal(t, Var("a"), x)
}

func TestCompose(t *testing.T) {
	first := NewSubstitution(map[string]MonoType{
		"a": Var("b"),
		"c": Arrow(Var("b"), Var("d")),
	})
	second := Singleton("b", Number)

	composed := second.Compose(first)
	expected := NewSubstitution(map[string]MonoType{
		"a": Number,
		"b": Number,
		"c": Arrow(Number, Var("d")),
	})
	assert.Equal(t, expected.String(), composed.String())

	// applying the composition is applying first, then second
	target := Arrows(Var("a"), Var("c"), Var("d"))
	assert.Equal(t, second.ApplyMono(first.ApplyMono(target)), composed.ApplyMono(target))
}

func TestComposeKeepsLeftBindings(t *testing.T) {
	left := Singleton("a", Number)
	right := Singleton("a", String)
	got, ok := left.Compose(right).Get("a")
	assert.True(t, ok)
	assert.Equal(t, Number, got)
}

func TestEmptySubstitution(t *testing.T) {
	var s Substitution
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "{}", s.String())
	assert.Equal(t, Var("a"), s.ApplyMono(Var("a")))
	assert.Equal(t, 1, s.Compose(Singleton("a", Null)).Len())
}

func TestContextIsPersistent(t *testing.T) {
	var empty Context
	one := empty.With("x", Number)
	two := one.With("y", String).With("x", Bool)

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, []string{"x", "y"}, two.Names())

	x, _ := one.Get("x")
	assert.Equal(t, Number, x)
	x, _ = two.Get("x")
	assert.Equal(t, Bool, x)

	merged := one.Merge(NewContext(map[string]PolyType{"x": Null, "z": String}))
	x, _ = merged.Get("x")
	assert.Equal(t, Null, x)
	assert.Equal(t, "{x: Null, z: String}", merged.String())

	_, ok := empty.Get("x")
	assert.False(t, ok)
}
