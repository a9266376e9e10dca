package types

import (
	"fmt"
	"strings"
)

// TypeFunction is the constructor of a TypeApplication
type TypeFunction string

const (
	ArrowFunc  TypeFunction = "->"
	ArrayFunc  TypeFunction = "[]"
	EitherFunc TypeFunction = "Either"
	BoolFunc   TypeFunction = "Bool"
	NullFunc   TypeFunction = "Null"
	NumberFunc TypeFunction = "Number"
	StringFunc TypeFunction = "String"
)

// PolyType is either a MonoType or a TypeQuantifier.
// The set of implementations is closed.
type PolyType interface {
	fmt.Stringer
	polyType()
}

// MonoType is a type without universally quantified type variables
type MonoType interface {
	PolyType
	Equal(MonoType) bool
	monoType()
}

var (
	_ MonoType = TypeVariable{}
	_ MonoType = TypeApplication{}
	_ PolyType = TypeQuantifier{}
)

// TypeVariable is a placeholder resolved by unification
type TypeVariable struct {
	Name string
}

func (TypeVariable) polyType()        {}
func (TypeVariable) monoType()        {}
func (t TypeVariable) String() string { return t.Name }
func (t TypeVariable) Equal(other MonoType) bool {
	v, ok := other.(TypeVariable)
	return ok && v.Name == t.Name
}

// TypeApplication applies a TypeFunction to zero, one or two arguments:
// "->" and "Either" take two, "[]" takes one and the primitives take none.
type TypeApplication struct {
	Constructor TypeFunction
	Args        []MonoType
}

func (TypeApplication) polyType() {}
func (TypeApplication) monoType() {}

func (t TypeApplication) Equal(other MonoType) bool {
	app, ok := other.(TypeApplication)
	if !ok || app.Constructor != t.Constructor || len(app.Args) != len(t.Args) {
		return false
	}
	for i, arg := range t.Args {
		if !arg.Equal(app.Args[i]) {
			return false
		}
	}
	return true
}

func (t TypeApplication) String() string {
	switch {
	case t.Constructor == ArrowFunc && len(t.Args) == 2:
		from := t.Args[0].String()
		if isArrow(Simplify(t.Args[0])) {
			from = "(" + from + ")"
		}
		return from + " -> " + t.Args[1].String()
	case t.Constructor == ArrayFunc && len(t.Args) == 1:
		return "[" + t.Args[0].String() + "]"
	case t.Constructor == EitherFunc && len(t.Args) == 2 && t.Args[0].Equal(t.Args[1]):
		return t.Args[0].String()
	}
	if len(t.Args) == 0 {
		return string(t.Constructor)
	}
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, string(t.Constructor))
	for _, arg := range t.Args {
		parts = append(parts, atom(arg))
	}
	return strings.Join(parts, " ")
}

// TypeQuantifier is ∀Bound. Body. Quantifying over several variables nests
// quantifiers, outermost first.
type TypeQuantifier struct {
	Bound string
	Body  PolyType
}

func (TypeQuantifier) polyType() {}

func (t TypeQuantifier) String() string {
	bound := []string{t.Bound}
	body := t.Body
	for {
		inner, ok := body.(TypeQuantifier)
		if !ok {
			break
		}
		bound = append(bound, inner.Bound)
		body = inner.Body
	}
	return "∀" + strings.Join(bound, " ") + ". " + body.String()
}

var (
	Bool   MonoType = TypeApplication{Constructor: BoolFunc}
	Null   MonoType = TypeApplication{Constructor: NullFunc}
	Number MonoType = TypeApplication{Constructor: NumberFunc}
	String MonoType = TypeApplication{Constructor: StringFunc}
)

func Var(name string) TypeVariable {
	return TypeVariable{Name: name}
}

// Arrow is the type of a single-argument function
func Arrow(from, to MonoType) MonoType {
	return TypeApplication{Constructor: ArrowFunc, Args: []MonoType{from, to}}
}

// Arrows builds the curried function type ts[0] -> ts[1] -> ... -> ts[n-1]
func Arrows(ts ...MonoType) MonoType {
	if len(ts) == 0 {
		panic("Arrows needs at least one type")
	}
	ret := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		ret = Arrow(ts[i], ret)
	}
	return ret
}

func ArrayOf(elem MonoType) MonoType {
	return TypeApplication{Constructor: ArrayFunc, Args: []MonoType{elem}}
}

// Either does not collapse Either a a; see NewTypeApplication for that
func Either(left, right MonoType) MonoType {
	return TypeApplication{Constructor: EitherFunc, Args: []MonoType{left, right}}
}

// Forall quantifies body over bound, the first name being the outermost quantifier
func Forall(body MonoType, bound ...string) PolyType {
	var ret PolyType = body
	for i := len(bound) - 1; i >= 0; i-- {
		ret = TypeQuantifier{Bound: bound[i], Body: ret}
	}
	return ret
}

// NewTypeApplication builds constructor applied to args, collapsing
// Either A A into A because the choice between equal branches is moot
func NewTypeApplication(constructor TypeFunction, args ...MonoType) MonoType {
	return Simplify(TypeApplication{Constructor: constructor, Args: args})
}

// Simplify collapses a top-level Either A A into A
func Simplify(t MonoType) MonoType {
	app, ok := t.(TypeApplication)
	if ok && app.Constructor == EitherFunc && len(app.Args) == 2 && app.Args[0].Equal(app.Args[1]) {
		return Simplify(app.Args[0])
	}
	return t
}

func isArrow(t MonoType) bool {
	app, ok := t.(TypeApplication)
	return ok && app.Constructor == ArrowFunc && len(app.Args) == 2
}

// atom renders t, parenthesised if it is made of several words
func atom(t MonoType) string {
	t = Simplify(t)
	app, ok := t.(TypeApplication)
	if !ok || len(app.Args) == 0 || app.Constructor == ArrayFunc {
		return t.String()
	}
	return "(" + t.String() + ")"
}
