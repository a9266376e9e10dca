package jsonlogic

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/open-formulieren/jsonlogic-infer/inferr"
	"github.com/open-formulieren/jsonlogic-infer/internal/log"
	"github.com/open-formulieren/jsonlogic-infer/types"
	"github.com/open-formulieren/jsonlogic-infer/util"
)

var parseLogger = log.DefaultLogger.With("section", "jsonlogic.parse")

// VarPrefix namespaces JsonLogic variables in a types.Context, keeping
// {"var": "if"} apart from the if operator
const VarPrefix = "var: "

// Names bound by the callbacks of the array operators
const (
	currentItemVar = VarPrefix
	accumulatorVar = VarPrefix + "accumulator"
	currentVar     = VarPrefix + "current"
)

// Parse turns a decoded JsonLogic value into an Expression.
//
// The returned Context binds each variable the expression references,
// prefixed with VarPrefix, to a type variable of the same name, plus the
// signatures synthesised for variadic operators. It is meant to be merged
// over DefaultContext.
func Parse(value any) (types.Context, types.Expression, error) {
	p := &parser{}
	expr, err := p.parse(value)
	if err != nil {
		return types.Context{}, nil, err
	}
	parseLogger.Debug("parsed", "expr", types.SlogExpr(expr), "ctx", p.ctx.String())
	return p.ctx, expr, nil
}

type parser struct {
	ctx types.Context
}

func (p *parser) parse(value any) (types.Expression, error) {
	switch v := value.(type) {
	case nil:
		return &types.Variable{Name: nullName}, nil
	case bool:
		if v {
			return &types.Variable{Name: trueName}, nil
		}
		return &types.Variable{Name: falseName}, nil
	case string:
		return &types.StringLiteral{Value: v}, nil
	case []any:
		items, err := p.parseAll(v)
		if err != nil {
			return nil, err
		}
		return list(items), nil
	case map[string]any:
		return p.parseOperation(v)
	}
	if n, ok, err := asNumber(value); ok {
		if err != nil {
			return nil, err
		}
		return &types.NumberLiteral{Value: n}, nil
	}
	return nil, inferr.New(inferr.NewMalformedInput{
		Value:  value,
		Reason: fmt.Sprintf("unsupported value of type %T", value),
	})
}

func (p *parser) parseAll(values []any) ([]types.Expression, error) {
	exprs := make([]types.Expression, len(values))
	for i, value := range values {
		expr, err := p.parse(value)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	return exprs, nil
}

func (p *parser) parseOperation(obj map[string]any) (types.Expression, error) {
	if len(obj) != 1 {
		return nil, inferr.New(inferr.NewMalformedInput{
			Value:  obj,
			Reason: fmt.Sprintf("expected a single operator, found %d keys", len(obj)),
		})
	}
	var operator string
	var operand any
	for operator, operand = range obj {
	}
	args := arguments(operand)

	switch operator {
	case "var":
		return p.parseVar(args)

	case ifName:
		return p.parseIf(operator, args)

	case "and", "or":
		if len(args) < 2 {
			return nil, wrongArity(operator, len(args))
		}
		exprs, err := p.parseAll(args)
		if err != nil {
			return nil, err
		}
		fn := &types.Variable{Name: operator}
		ret := types.Call(fn, exprs[0], exprs[1])
		for _, expr := range exprs[2:] {
			ret = types.Call(fn, ret, expr)
		}
		return ret, nil

	case "map", "filter", "all", "some", "none":
		if len(args) != 2 {
			return nil, wrongArity(operator, len(args))
		}
		exprs, err := p.parseAll(args)
		if err != nil {
			return nil, err
		}
		callback := &types.Abstraction{Parameter: currentItemVar, Body: exprs[1]}
		return types.Call(&types.Variable{Name: operator}, exprs[0], callback), nil

	case "reduce":
		if len(args) != 3 {
			return nil, wrongArity(operator, len(args))
		}
		exprs, err := p.parseAll(args)
		if err != nil {
			return nil, err
		}
		callback := &types.Abstraction{
			Parameter: accumulatorVar,
			Body:      &types.Abstraction{Parameter: currentVar, Body: exprs[1]},
		}
		return types.Call(&types.Variable{Name: operator}, exprs[0], callback, exprs[2]), nil

	case "cat", "merge", "missing", "min", "max":
		exprs, err := p.parseAll(args)
		if err != nil {
			return nil, err
		}
		return types.Call(&types.Variable{Name: operator}, list(exprs)), nil
	}

	name, signature, err := resolveOperator(operator, len(args))
	if err != nil {
		return nil, err
	}
	if signature != nil {
		p.ctx = p.ctx.With(name, signature)
	}
	exprs, err := p.parseAll(args)
	if err != nil {
		return nil, err
	}
	return types.Call(&types.Variable{Name: name}, exprs...), nil
}

// parseVar handles {"var": name} and {"var": [name, default]}
func (p *parser) parseVar(args []any) (types.Expression, error) {
	if len(args) > 2 {
		return nil, wrongArity("var", len(args))
	}
	name := ""
	if len(args) > 0 {
		switch v := args[0].(type) {
		case nil:
		case string:
			name = v
		case json.Number:
			name = v.String()
		default:
			n, ok, err := asNumber(v)
			if !ok || err != nil {
				return nil, inferr.New(inferr.NewMalformedInput{
					Value:  v,
					Reason: fmt.Sprintf("variable name of type %T", v),
				})
			}
			name = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	varName := VarPrefix + name
	p.ctx = p.ctx.With(varName, types.Var(varName))
	ref := &types.Variable{Name: varName}
	if len(args) < 2 {
		return ref, nil
	}
	fallback, err := p.parse(args[1])
	if err != nil {
		return nil, err
	}
	return types.Call(&types.Variable{Name: varDefaultName}, ref, fallback), nil
}

// parseIf desugars chains {"if": [c1, a, c2, b, otherwise]} into nested ifs.
// A missing final branch is null.
func (p *parser) parseIf(operator string, args []any) (types.Expression, error) {
	if len(args) < 2 {
		return nil, wrongArity(operator, len(args))
	}
	cond, err := p.parse(args[0])
	if err != nil {
		return nil, err
	}
	then, err := p.parse(args[1])
	if err != nil {
		return nil, err
	}
	var otherwise types.Expression
	switch rest := args[2:]; len(rest) {
	case 0:
		otherwise = &types.Variable{Name: nullName}
	case 1:
		otherwise, err = p.parse(rest[0])
	default:
		otherwise, err = p.parseIf(operator, rest)
	}
	if err != nil {
		return nil, err
	}
	return types.Call(&types.Variable{Name: ifName}, cond, then, otherwise), nil
}

// list desugars items into cons item0 (cons item1 (... []))
func list(items []types.Expression) types.Expression {
	var ret types.Expression = &types.Variable{Name: emptyListName}
	for item := range util.Reverse(items) {
		ret = types.Call(&types.Variable{Name: consName}, item, ret)
	}
	return ret
}

// arguments returns the operand of an operator as an argument list; a
// single non-array operand is shorthand for a list of one
func arguments(operand any) []any {
	if args, ok := operand.([]any); ok {
		return args
	}
	return []any{operand}
}

func wrongArity(operator string, arity int) error {
	return inferr.New(inferr.NewMalformedInput{
		Value:  operator,
		Reason: fmt.Sprintf("operator does not accept %d arguments", arity),
	})
}

// asNumber converts the numeric kinds produced by JSON and YAML decoders
func asNumber(value any) (n float64, ok bool, err error) {
	switch v := value.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int8:
		return float64(v), true, nil
	case int16:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint:
		return float64(v), true, nil
	case uint8:
		return float64(v), true, nil
	case uint16:
		return float64(v), true, nil
	case uint32:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, true, inferr.New(inferr.NewMalformedInput{Value: v, Reason: err.Error()})
		}
		return f, true, nil
	}
	return 0, false, nil
}
