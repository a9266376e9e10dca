package jsonlogic

import (
	"fmt"
	"slices"

	"github.com/open-formulieren/jsonlogic-infer/types"
)

// Names of builtins the parser refers to directly
const (
	falseName      = "false"
	trueName       = "true"
	nullName       = "null"
	emptyListName  = "[]"
	consName       = "cons"
	ifName         = "if"
	varDefaultName = "var default"
)

var (
	alpha = types.Var("a")
	beta  = types.Var("b")

	number  = types.Number
	str     = types.String
	boolean = types.Bool
)

var defaultContext = types.NewContext(map[string]types.PolyType{
	falseName: boolean,
	trueName:  boolean,
	nullName:  types.Null,

	emptyListName: types.Forall(types.ArrayOf(alpha), "a"),
	consName:      types.Forall(types.Arrows(alpha, types.ArrayOf(alpha), types.ArrayOf(alpha)), "a"),

	"Either": types.Forall(types.Arrows(alpha, beta, types.Either(alpha, beta)), "a", "b"),

	// data access
	"missing":      types.Arrow(types.ArrayOf(str), types.ArrayOf(str)),
	"missing_some": types.Arrows(number, types.ArrayOf(str), types.ArrayOf(str)),
	varDefaultName: types.Forall(types.Arrows(alpha, alpha, alpha), "a"),

	// logic
	ifName: types.Forall(types.Arrows(boolean, alpha, beta, types.Either(alpha, beta)), "a", "b"),
	"==":   types.Forall(types.Arrows(alpha, beta, boolean), "a", "b"),
	"!=":   types.Forall(types.Arrows(alpha, beta, boolean), "a", "b"),
	"===":  types.Forall(types.Arrows(alpha, beta, boolean), "a", "b"),
	"!==":  types.Forall(types.Arrows(alpha, beta, boolean), "a", "b"),
	"!":    types.Forall(types.Arrow(alpha, boolean), "a"),
	"!!":   types.Forall(types.Arrow(alpha, boolean), "a"),
	"or":   types.Arrows(boolean, boolean, boolean),
	"and":  types.Arrows(boolean, boolean, boolean),

	// numeric
	">":        types.Arrows(number, number, boolean),
	">=":       types.Arrows(number, number, boolean),
	"<":        types.Arrows(number, number, boolean),
	"<=":       types.Arrows(number, number, boolean),
	"3-ary <":  types.Arrows(number, number, number, boolean),
	"3-ary <=": types.Arrows(number, number, number, boolean),
	"max":      types.Arrow(types.ArrayOf(number), number),
	"min":      types.Arrow(types.ArrayOf(number), number),

	// arithmetic
	"+":       types.Arrows(number, number, number),
	"-":       types.Arrows(number, number, number),
	"*":       types.Arrows(number, number, number),
	"/":       types.Arrows(number, number, number),
	"%":       types.Arrows(number, number, number),
	"1-ary -": types.Arrow(number, number),
	"1-ary +": types.Forall(types.Arrow(alpha, number), "a"),

	// arrays
	"map":    types.Forall(types.Arrows(types.ArrayOf(alpha), types.Arrow(alpha, beta), types.ArrayOf(beta)), "a", "b"),
	"filter": types.Forall(types.Arrows(types.ArrayOf(alpha), types.Arrow(alpha, boolean), types.ArrayOf(alpha)), "a"),
	"reduce": types.Forall(types.Arrows(types.ArrayOf(beta), types.Arrows(alpha, beta, alpha), alpha, alpha), "a", "b"),
	"all":    types.Forall(types.Arrows(types.ArrayOf(alpha), types.Arrow(alpha, boolean), boolean), "a"),
	"none":   types.Forall(types.Arrows(types.ArrayOf(alpha), types.Arrow(alpha, boolean), boolean), "a"),
	"some":   types.Forall(types.Arrows(types.ArrayOf(alpha), types.Arrow(alpha, boolean), boolean), "a"),
	"merge":  types.Forall(types.Arrow(types.ArrayOf(types.ArrayOf(alpha)), types.ArrayOf(alpha)), "a"),
	"in":     types.Forall(types.Arrows(alpha, types.ArrayOf(alpha), boolean), "a"),

	// strings
	"cat":          types.Arrow(types.ArrayOf(str), str),
	"substr":       types.Arrows(str, number, str),
	"3-ary substr": types.Arrows(str, number, number, str),

	"log": types.Forall(types.Arrow(alpha, alpha), "a"),
})

// DefaultContext maps every supported JsonLogic operator to its type
func DefaultContext() types.Context {
	return defaultContext
}

type operatorArity struct {
	operator string
	arity    int
}

// arityOverloads resolves operators whose type depends on how many arguments they are given
var arityOverloads = map[operatorArity]string{
	{"<", 2}:      "<",
	{"<", 3}:      "3-ary <",
	{"<=", 2}:     "<=",
	{"<=", 3}:     "3-ary <=",
	{"substr", 2}: "substr",
	{"substr", 3}: "3-ary substr",
	{"-", 1}:      "1-ary -",
	{"-", 2}:      "-",
	{"+", 1}:      "1-ary +",
	{"+", 2}:      "+",
	{"*", 2}:      "*",
	{"!", 1}:      "!",
	{"!!", 1}:     "!!",
	{"log", 1}:    "log",
}

// variadicNumeric holds the operators which, from the given arity on, take
// that many numbers and return a number
var variadicNumeric = map[string]int{
	"+": 3,
	"*": 3,
}

var overloaded = func() map[string]bool {
	ops := make(map[string]bool)
	for key := range arityOverloads {
		ops[key.operator] = true
	}
	for op := range variadicNumeric {
		ops[op] = true
	}
	return ops
}()

// resolveOperator returns the name of the builtin implementing operator when
// called with arity arguments. Variadic overloads have no entry in the
// default context: their synthesised signature is returned alongside.
func resolveOperator(operator string, arity int) (name string, signature types.PolyType, err error) {
	if minArity, ok := variadicNumeric[operator]; ok && arity >= minArity {
		params := slices.Repeat([]types.MonoType{number}, arity+1)
		return fmt.Sprintf("%d-ary %s", arity, operator), types.Arrows(params...), nil
	}
	if !overloaded[operator] {
		return operator, nil, nil
	}
	name, ok := arityOverloads[operatorArity{operator, arity}]
	if !ok {
		return "", nil, wrongArity(operator, arity)
	}
	return name, nil, nil
}
