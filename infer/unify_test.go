package infer

import (
	"testing"

	"github.com/open-formulieren/jsonlogic-infer/inferr"
	. "github.com/open-formulieren/jsonlogic-infer/types"
	"github.com/stretchr/testify/assert"
)

var (
	a = Var("a")
	b = Var("b")
	c = Var("c")
)

var unifyTests = []struct {
	name string
	a    MonoType
	b    MonoType

	subs map[string]MonoType
	err  inferr.ErrCode
}{
	{"a ~ a", a, a, map[string]MonoType{}, inferr.None},
	{"a ~ Number", a, Number, map[string]MonoType{"a": Number}, inferr.None},
	{"Number ~ a", Number, a, map[string]MonoType{"a": Number}, inferr.None},
	{"a ~ b", a, b, map[string]MonoType{"a": b}, inferr.None},
	{"Number ~ Number", Number, Number, map[string]MonoType{}, inferr.None},
	{"(a -> b) ~ (Number -> [a])", Arrow(a, b), Arrow(Number, ArrayOf(a)),
		map[string]MonoType{"a": Number, "b": ArrayOf(Number)}, inferr.None},
	{"(a -> a -> b) ~ (String -> c -> Bool)", Arrows(a, a, b), Arrows(String, c, Bool),
		map[string]MonoType{"a": String, "b": Bool, "c": String}, inferr.None},
	{"Either a a ~ Number", Either(a, a), Number, map[string]MonoType{"a": Number}, inferr.None},
	{"Either Number Number ~ Number", Either(Number, Number), Number, map[string]MonoType{}, inferr.None},

	{"Number ~ String", Number, String, nil, inferr.UnificationMismatch},
	{"Either a b ~ Number", Either(a, b), Number, nil, inferr.UnificationMismatch},
	{"(a -> Number) ~ (a -> Bool)", Arrow(a, Number), Arrow(a, Bool), nil, inferr.UnificationMismatch},
	{"[a] ~ [] a b", ArrayOf(a), TypeApplication{Constructor: ArrayFunc, Args: []MonoType{a, b}}, nil, inferr.ArityMismatch},
	{"a ~ a -> b", a, Arrow(a, b), nil, inferr.OccursCheck},
	{"[a] ~ a", ArrayOf(a), a, nil, inferr.OccursCheck},
	{"(a -> b) ~ (b -> [a])", Arrow(a, b), Arrow(b, ArrayOf(a)), nil, inferr.OccursCheck},
}

func TestUnify(t *testing.T) {
	for _, uts := range unifyTests {
		t.Run(uts.name, func(t *testing.T) {
			sub, err := Unify(uts.a, uts.b)
			if uts.err != inferr.None {
				assert.Error(t, err)
				assert.Equal(t, uts.err, inferr.CodeOf(err), "unexpected error %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, NewSubstitution(uts.subs).String(), sub.String())

			// the unifier makes both sides equal
			assert.True(t, Simplify(sub.ApplyMono(uts.a)).Equal(Simplify(sub.ApplyMono(uts.b))),
				"%v and %v differ under %v", sub.ApplyMono(uts.a), sub.ApplyMono(uts.b), sub)
		})
	}
}

func TestUnifyMismatchReportsConflictingSubtypes(t *testing.T) {
	_, err := Unify(Arrows(Number, Number, Number), Arrows(Number, Bool, c))
	var mismatch inferr.NewUnificationMismatch
	if assert.ErrorAs(t, err, &mismatch) {
		assert.Equal(t, Number, mismatch.First)
		assert.Equal(t, Bool, mismatch.Second)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	_, err := Unify(a, Arrow(a, b))
	var occurs inferr.NewOccursCheck
	if assert.ErrorAs(t, err, &occurs) {
		assert.Equal(t, a, occurs.Variable)
		assert.Equal(t, Arrow(a, b), occurs.In)
	}
}
