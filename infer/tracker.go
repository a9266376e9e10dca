package infer

import (
	"strconv"

	"github.com/open-formulieren/jsonlogic-infer/types"
)

// VarTracker hands out fresh type variables t0, t1, t2...
//
// A VarTracker belongs to a single inference run: it is not safe for
// concurrent use, and names are only unique among the variables of one
// tracker.
type VarTracker struct {
	next int
}

func NewVarTracker() *VarTracker {
	return &VarTracker{}
}

func (v *VarTracker) New() types.TypeVariable {
	name := "t" + strconv.Itoa(v.next)
	v.next++
	return types.TypeVariable{Name: name}
}
