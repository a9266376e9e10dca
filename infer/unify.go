package infer

import (
	"github.com/open-formulieren/jsonlogic-infer/inferr"
	"github.com/open-formulieren/jsonlogic-infer/types"
)

// Unify returns the most general substitution making a and b equal.
//
// Type applications unify argument-wise, left to right, each step seeing the
// substitution accumulated so far. A type variable unifies with any type it
// does not occur in.
func Unify(a, b types.MonoType) (types.Substitution, error) {
	a, b = types.Simplify(a), types.Simplify(b)
	unifyLogger.Debug("unifying", "a", types.SlogType(a), "b", types.SlogType(b))

	switch a := a.(type) {
	case types.TypeVariable:
		if v, ok := b.(types.TypeVariable); ok && v.Name == a.Name {
			return types.EmptySubstitution(), nil
		}
		return bindVariable(a, b)

	case types.TypeApplication:
		switch b := b.(type) {
		case types.TypeVariable:
			return Unify(b, a)
		case types.TypeApplication:
			return unifyApplications(a, b)
		}
	}
	return types.Substitution{}, inferr.New(inferr.NewUnsupportedUnification{First: a, Second: b})
}

func bindVariable(v types.TypeVariable, t types.MonoType) (types.Substitution, error) {
	if types.Occurs(v.Name, t) {
		return types.Substitution{}, inferr.New(inferr.NewOccursCheck{Variable: v, In: t})
	}
	return types.Singleton(v.Name, t), nil
}

func unifyApplications(a, b types.TypeApplication) (types.Substitution, error) {
	if a.Constructor != b.Constructor {
		return types.Substitution{}, inferr.New(inferr.NewUnificationMismatch{First: a, Second: b})
	}
	if len(a.Args) != len(b.Args) {
		return types.Substitution{}, inferr.New(inferr.NewArityMismatch{First: a, Second: b})
	}
	s := types.EmptySubstitution()
	for i := range a.Args {
		next, err := Unify(s.ApplyMono(a.Args[i]), s.ApplyMono(b.Args[i]))
		if err != nil {
			return types.Substitution{}, err
		}
		s = next.Compose(s)
	}
	return s, nil
}
