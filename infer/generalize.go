package infer

import (
	"fmt"

	"github.com/open-formulieren/jsonlogic-infer/types"
)

// Generalize quantifies t over the type variables free in t but not in ctx.
// Quantifiers are nested in lexicographic order of the variable names, the
// first name outermost. If nothing can be quantified t is returned as is.
func Generalize(ctx types.Context, t types.MonoType) types.PolyType {
	free := types.FreeVariables(t).Diff(ctx.FreeVariables())
	return types.Forall(t, free...)
}

// Instantiate replaces every quantified variable of t with a fresh one from vars
func Instantiate(t types.PolyType, vars *VarTracker) types.MonoType {
	switch t := t.(type) {
	case types.MonoType:
		return t
	case types.TypeQuantifier:
		fresh := vars.New()
		body := types.Singleton(t.Bound, fresh).ApplyPoly(t.Body)
		return Instantiate(body, vars)
	}
	panic(fmt.Sprintf("unexpected poly type %T", t))
}
