package inferr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/open-formulieren/jsonlogic-infer/types"
)

// enableDebugErrorPrinting makes errors include the frame that raised them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	UndefinedVariable
	UnificationMismatch
	ArityMismatch
	OccursCheck
	UnsupportedUnification
	MalformedInput
)

type InferError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) InferError
	getStack() []byte
}

func FormatWithCode(e InferError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E InferError](err E) InferError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the ErrCode of the first InferError in err's chain, or None
func CodeOf(err error) ErrCode {
	var inferErr InferError
	if errors.As(err, &inferErr) {
		return inferErr.Code()
	}
	return None
}

// IsUnificationError reports whether err is one of the ways two types can fail to unify
func IsUnificationError(err error) bool {
	switch CodeOf(err) {
	case UnificationMismatch, ArityMismatch, OccursCheck, UnsupportedUnification:
		return true
	default:
		return false
	}
}

type NewUndefinedVariable struct {
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}

// NewUnificationMismatch is raised when two type applications have different type functions
type NewUnificationMismatch struct {
	First  types.MonoType
	Second types.MonoType
	stack  []byte
}

func (e NewUnificationMismatch) Code() ErrCode { return UnificationMismatch }
func (e NewUnificationMismatch) Error() string {
	return fmt.Sprintf("type mismatch: different type functions, cannot unify '%v' with '%v'", e.First, e.Second)
}
func (e NewUnificationMismatch) getStack() []byte { return e.stack }
func (e NewUnificationMismatch) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}

type NewArityMismatch struct {
	First  types.TypeApplication
	Second types.TypeApplication
	stack  []byte
}

func (e NewArityMismatch) Code() ErrCode { return ArityMismatch }
func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("type mismatch: '%v' and '%v' apply '%s' to %d and %d arguments",
		e.First, e.Second, e.First.Constructor, len(e.First.Args), len(e.Second.Args))
}
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}

type NewOccursCheck struct {
	Variable types.TypeVariable
	In       types.MonoType
	stack    []byte
}

func (e NewOccursCheck) Code() ErrCode { return OccursCheck }
func (e NewOccursCheck) Error() string {
	return fmt.Sprintf("infinite type: '%v' occurs in '%v'", e.Variable, e.In)
}
func (e NewOccursCheck) getStack() []byte { return e.stack }
func (e NewOccursCheck) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}

type NewUnsupportedUnification struct {
	First  types.MonoType
	Second types.MonoType
	stack  []byte
}

func (e NewUnsupportedUnification) Code() ErrCode { return UnsupportedUnification }
func (e NewUnsupportedUnification) Error() string {
	return fmt.Sprintf("cannot unify '%v' with '%v'", e.First, e.Second)
}
func (e NewUnsupportedUnification) getStack() []byte { return e.stack }
func (e NewUnsupportedUnification) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}

// NewMalformedInput is raised for JSON values that are not JsonLogic, and for
// operators called with an arity none of their overloads accepts
type NewMalformedInput struct {
	Value  any
	Reason string
	stack  []byte
}

func (e NewMalformedInput) Code() ErrCode { return MalformedInput }
func (e NewMalformedInput) Error() string {
	return fmt.Sprintf("malformed JsonLogic %#v: %s", e.Value, e.Reason)
}
func (e NewMalformedInput) getStack() []byte { return e.stack }
func (e NewMalformedInput) withStack(stack []byte) InferError {
	e.stack = stack
	return e
}
