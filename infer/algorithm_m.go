package infer

import (
	"fmt"

	"github.com/open-formulieren/jsonlogic-infer/inferr"
	"github.com/open-formulieren/jsonlogic-infer/types"
)

// AlgorithmM checks expr against expected top-down, returning the
// substitution under which expr has type expected in ctx.
//
// M does not split an Either result: an operator returning Either a b never
// unifies with a plain type, even when both branches would agree with it.
// AlgorithmW does not have this limitation because it only sees the Either
// once its branches are known and collapses equal ones.
func AlgorithmM(ctx types.Context, expr types.Expression, expected types.MonoType, vars *VarTracker) (types.Substitution, error) {
	mLogger.Debug("checking", "expr", types.SlogExpr(expr), "expected", types.SlogType(expected))

	switch e := expr.(type) {
	case *types.NumberLiteral:
		return Unify(expected, types.Number)

	case *types.StringLiteral:
		return Unify(expected, types.String)

	case *types.Variable:
		scheme, ok := ctx.Get(e.Name)
		if !ok {
			return types.Substitution{}, inferr.New(inferr.NewUndefinedVariable{Name: e.Name})
		}
		return Unify(expected, Instantiate(scheme, vars))

	case *types.Abstraction:
		param, ret := vars.New(), vars.New()
		s1, err := Unify(expected, types.Arrow(param, ret))
		if err != nil {
			return types.Substitution{}, err
		}
		bodyCtx := s1.ApplyContext(ctx).With(e.Parameter, s1.ApplyMono(param))
		s2, err := AlgorithmM(bodyCtx, e.Body, s1.ApplyMono(ret), vars)
		if err != nil {
			return types.Substitution{}, err
		}
		return s2.Compose(s1), nil

	case *types.Application:
		arg := vars.New()
		s1, err := AlgorithmM(ctx, e.Function, types.Arrow(arg, expected), vars)
		if err != nil {
			return types.Substitution{}, err
		}
		s2, err := AlgorithmM(s1.ApplyContext(ctx), e.Argument, s1.ApplyMono(arg), vars)
		if err != nil {
			return types.Substitution{}, err
		}
		return s2.Compose(s1), nil

	case *types.Let:
		bound := vars.New()
		s1, err := AlgorithmM(ctx, e.Bound, bound, vars)
		if err != nil {
			return types.Substitution{}, err
		}
		boundCtx := s1.ApplyContext(ctx)
		scheme := Generalize(boundCtx, s1.ApplyMono(bound))
		s2, err := AlgorithmM(boundCtx.With(e.Name, scheme), e.Body, s1.ApplyMono(expected), vars)
		if err != nil {
			return types.Substitution{}, err
		}
		return s2.Compose(s1), nil
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}
