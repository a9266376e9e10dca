package types

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/open-formulieren/jsonlogic-infer/util"
)

// Expression is a node of the term language checked by the inference algorithms.
// Nodes are never mutated once built.
type Expression interface {
	fmt.Stringer
	expressionNode()
}

var (
	_ Expression = (*NumberLiteral)(nil)
	_ Expression = (*StringLiteral)(nil)
	_ Expression = (*Variable)(nil)
	_ Expression = (*Application)(nil)
	_ Expression = (*Abstraction)(nil)
	_ Expression = (*Let)(nil)
)

type NumberLiteral struct {
	Value float64
}

type StringLiteral struct {
	Value string
}

// Variable references a name bound in the Context or by an enclosing Abstraction or Let
type Variable struct {
	Name string
}

// Application applies Function to a single Argument. Calls with several
// arguments are curried, see Call.
type Application struct {
	Function Expression
	Argument Expression
}

// Abstraction is a single-parameter function literal
type Abstraction struct {
	Parameter string
	Body      Expression
}

// Let binds Name to Bound within Body, generalising the type of Bound
type Let struct {
	Name  string
	Bound Expression
	Body  Expression
}

func (*NumberLiteral) expressionNode() {}
func (*StringLiteral) expressionNode() {}
func (*Variable) expressionNode()      {}
func (*Application) expressionNode()   {}
func (*Abstraction) expressionNode()   {}
func (*Let) expressionNode()           {}

func (e *NumberLiteral) String() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }
func (e *StringLiteral) String() string { return strconv.Quote(e.Value) }
func (e *Variable) String() string      { return e.Name }

func (e *Application) String() string {
	var spine []Expression
	var fn Expression = e
	for {
		app, ok := fn.(*Application)
		if !ok {
			break
		}
		spine = append(spine, app.Argument)
		fn = app.Function
	}
	spine = append(spine, fn)
	return "(" + util.JoinString(slices.Collect(util.Reverse(spine)), " ") + ")"
}

func (e *Abstraction) String() string {
	return "(λ" + e.Parameter + ". " + e.Body.String() + ")"
}

func (e *Let) String() string {
	return "(let " + e.Name + " = " + e.Bound.String() + " in " + e.Body.String() + ")"
}

// Call applies fn to each of args in turn: Call(f, a, b) is ((f a) b)
func Call(fn Expression, args ...Expression) Expression {
	for _, arg := range args {
		fn = &Application{Function: fn, Argument: arg}
	}
	return fn
}
