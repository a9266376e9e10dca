package jsonlogic

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/open-formulieren/jsonlogic-infer/infer"
	"github.com/open-formulieren/jsonlogic-infer/internal/log"
	"github.com/open-formulieren/jsonlogic-infer/types"
	"github.com/pkg/errors"
)

var checkLogger = log.DefaultLogger.With("section", "jsonlogic.typecheck")

// Algorithm selects the inference algorithm used by TypeCheckWith
type Algorithm string

const (
	// M checks the expression top-down against a fresh expected type
	M Algorithm = "M"
	// W synthesises the type bottom-up
	W Algorithm = "W"
)

type Result struct {
	// Variables maps the names of the JsonLogic variables the rule uses to
	// their inferred type. Variables nothing constrains are left out.
	Variables map[string]types.MonoType
	Type      types.MonoType
}

// VariableNames returns the keys of Variables, sorted
func (r Result) VariableNames() []string {
	names := make([]string, 0, len(r.Variables))
	for name := range r.Variables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TypeCheck infers the type of a decoded JsonLogic rule using Algorithm W
func TypeCheck(expression any) (Result, error) {
	return TypeCheckWith(expression, W)
}

// TypeCheckWith infers the type of a decoded JsonLogic rule with the given
// algorithm; the empty Algorithm means W.
//
// Errors are the inferr errors raised while parsing or inferring, unchanged.
func TypeCheckWith(expression any, using Algorithm) (Result, error) {
	if using == "" {
		using = W
	}
	if using != M && using != W {
		return Result{}, errors.Errorf("unknown inference algorithm %q", using)
	}

	vars := infer.NewVarTracker()
	local, expr, err := Parse(expression)
	if err != nil {
		return Result{}, err
	}
	ctx := DefaultContext().Merge(local)

	var s types.Substitution
	var t types.MonoType
	switch using {
	case M:
		expected := vars.New()
		s, err = infer.AlgorithmM(ctx, expr, expected, vars)
		if err != nil {
			return Result{}, err
		}
		t = s.ApplyMono(expected)
	case W:
		s, t, err = infer.AlgorithmW(ctx, expr, vars)
		if err != nil {
			return Result{}, err
		}
	}

	result := Result{
		Variables: userVariables(local, s),
		Type:      s.ApplyMono(t),
	}
	checkLogger.Debug("type checked", "algorithm", string(using), "expr", types.SlogExpr(expr), "type", types.SlogType(result.Type))
	return result, nil
}

// userVariables picks the bindings of s for the variables of local, with
// VarPrefix stripped
func userVariables(local types.Context, s types.Substitution) map[string]types.MonoType {
	names := set.New[string](local.Len())
	for name := range local.All() {
		if strings.HasPrefix(name, VarPrefix) {
			names.Insert(name)
		}
	}
	variables := make(map[string]types.MonoType)
	for name, t := range s.All() {
		if names.Contains(name) {
			variables[strings.TrimPrefix(name, VarPrefix)] = s.ApplyMono(t)
		}
	}
	return variables
}
