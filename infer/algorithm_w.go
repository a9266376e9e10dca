package infer

import (
	"fmt"

	"github.com/open-formulieren/jsonlogic-infer/inferr"
	"github.com/open-formulieren/jsonlogic-infer/types"
)

// AlgorithmW infers the type of expr in ctx bottom-up. The returned type has
// the returned substitution applied already.
func AlgorithmW(ctx types.Context, expr types.Expression, vars *VarTracker) (types.Substitution, types.MonoType, error) {
	wLogger.Debug("inferring", "expr", types.SlogExpr(expr))

	switch e := expr.(type) {
	case *types.NumberLiteral:
		return types.EmptySubstitution(), types.Number, nil

	case *types.StringLiteral:
		return types.EmptySubstitution(), types.String, nil

	case *types.Variable:
		scheme, ok := ctx.Get(e.Name)
		if !ok {
			return types.Substitution{}, nil, inferr.New(inferr.NewUndefinedVariable{Name: e.Name})
		}
		return types.EmptySubstitution(), Instantiate(scheme, vars), nil

	case *types.Abstraction:
		param := vars.New()
		s, bodyType, err := AlgorithmW(ctx.With(e.Parameter, param), e.Body, vars)
		if err != nil {
			return types.Substitution{}, nil, err
		}
		return s, types.Arrow(s.ApplyMono(param), bodyType), nil

	case *types.Application:
		s1, fnType, err := AlgorithmW(ctx, e.Function, vars)
		if err != nil {
			return types.Substitution{}, nil, err
		}
		s2, argType, err := AlgorithmW(s1.ApplyContext(ctx), e.Argument, vars)
		if err != nil {
			return types.Substitution{}, nil, err
		}
		ret := vars.New()
		s3, err := Unify(s2.ApplyMono(fnType), types.Arrow(argType, ret))
		if err != nil {
			return types.Substitution{}, nil, err
		}
		s := s3.Compose(s2.Compose(s1))
		wLogger.Debug("applied", "expr", types.SlogExpr(expr), "subs", types.SlogSubs(s))
		return s, s3.ApplyMono(ret), nil

	case *types.Let:
		s1, boundType, err := AlgorithmW(ctx, e.Bound, vars)
		if err != nil {
			return types.Substitution{}, nil, err
		}
		boundCtx := s1.ApplyContext(ctx)
		scheme := Generalize(boundCtx, s1.ApplyMono(boundType))
		s2, bodyType, err := AlgorithmW(boundCtx.With(e.Name, scheme), e.Body, vars)
		if err != nil {
			return types.Substitution{}, nil, err
		}
		return s2.Compose(s1), bodyType, nil
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}
