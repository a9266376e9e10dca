package types

import (
	"fmt"

	"github.com/open-formulieren/jsonlogic-infer/util"
)

// FreeVariables returns the names of the type variables of t that are not
// bound by one of its quantifiers
func FreeVariables(t PolyType) util.NameSet {
	switch t := t.(type) {
	case TypeVariable:
		return util.NameSet{t.Name}
	case TypeApplication:
		var free util.NameSet
		for _, arg := range t.Args {
			free = free.Union(FreeVariables(arg))
		}
		return free
	case TypeQuantifier:
		return FreeVariables(t.Body).Remove(t.Bound)
	}
	panic(fmt.Sprintf("unexpected poly type %T", t))
}

// Occurs reports whether the type variable name appears free in t
func Occurs(name string, t PolyType) bool {
	return FreeVariables(t).Contains(name)
}
