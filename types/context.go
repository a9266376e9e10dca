package types

import (
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/open-formulieren/jsonlogic-infer/util"
)

var emptyMap = immutable.NewSortedMap(nil)

// Context maps names to their PolyType.
//
// A Context is persistent: With and Merge return extended copies and leave
// the receiver untouched, so a Context can be threaded through recursive
// inference without defensive copying. The zero value is the empty Context.
type Context struct {
	m *immutable.SortedMap
}

func NewContext(entries map[string]PolyType) Context {
	m := emptyMap
	for name, t := range entries {
		m = m.Set(name, t)
	}
	return Context{m: m}
}

func (c Context) entries() *immutable.SortedMap {
	if c.m == nil {
		return emptyMap
	}
	return c.m
}

func (c Context) Get(name string) (PolyType, bool) {
	t, ok := c.entries().Get(name)
	if !ok {
		return nil, false
	}
	return t.(PolyType), true
}

// With binds name to t, overwriting an existing binding
func (c Context) With(name string, t PolyType) Context {
	return Context{m: c.entries().Set(name, t)}
}

// Merge returns c extended with every binding of other; other wins on conflicts
func (c Context) Merge(other Context) Context {
	m := c.entries()
	for name, t := range other.All() {
		m = m.Set(name, t)
	}
	return Context{m: m}
}

func (c Context) Len() int {
	return c.entries().Len()
}

// All iterates over bindings sorted by name
func (c Context) All() iter.Seq2[string, PolyType] {
	return func(yield func(string, PolyType) bool) {
		it := c.entries().Iterator()
		for !it.Done() {
			k, v := it.Next()
			if !yield(k.(string), v.(PolyType)) {
				return
			}
		}
	}
}

func (c Context) Names() []string {
	names := make([]string, 0, c.Len())
	for name := range c.All() {
		names = append(names, name)
	}
	return names
}

// FreeVariables is the union of the free type variables of every binding
func (c Context) FreeVariables() util.NameSet {
	var free util.NameSet
	for _, t := range c.All() {
		free = free.Union(FreeVariables(t))
	}
	return free
}

func (c Context) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for name, t := range c.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(t.String())
	}
	sb.WriteString("}")
	return sb.String()
}
