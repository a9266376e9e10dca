package types

import (
	"fmt"
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Substitution maps type variable names to the MonoType replacing them.
// Like Context it is persistent; the zero value is the empty Substitution.
type Substitution struct {
	m *immutable.SortedMap
}

func EmptySubstitution() Substitution {
	return Substitution{}
}

func NewSubstitution(entries map[string]MonoType) Substitution {
	m := emptyMap
	for name, t := range entries {
		m = m.Set(name, t)
	}
	return Substitution{m: m}
}

// Singleton is the substitution replacing name with t
func Singleton(name string, t MonoType) Substitution {
	return Substitution{m: emptyMap.Set(name, t)}
}

func (s Substitution) entries() *immutable.SortedMap {
	if s.m == nil {
		return emptyMap
	}
	return s.m
}

func (s Substitution) Get(name string) (MonoType, bool) {
	t, ok := s.entries().Get(name)
	if !ok {
		return nil, false
	}
	return t.(MonoType), true
}

func (s Substitution) Len() int {
	return s.entries().Len()
}

// All iterates over the substitution sorted by type variable name
func (s Substitution) All() iter.Seq2[string, MonoType] {
	return func(yield func(string, MonoType) bool) {
		it := s.entries().Iterator()
		for !it.Done() {
			k, v := it.Next()
			if !yield(k.(string), v.(MonoType)) {
				return
			}
		}
	}
}

// Without returns s with no replacement for name
func (s Substitution) Without(name string) Substitution {
	if _, ok := s.Get(name); !ok {
		return s
	}
	return Substitution{m: s.entries().Delete(name)}
}

// ApplyMono replaces every type variable of t bound in s.
// Applications are rebuilt with NewTypeApplication, so an Either whose
// branches become equal collapses.
func (s Substitution) ApplyMono(t MonoType) MonoType {
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case TypeVariable:
		if replacement, ok := s.Get(t.Name); ok {
			return replacement
		}
		return t
	case TypeApplication:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]MonoType, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.ApplyMono(arg)
		}
		return NewTypeApplication(t.Constructor, args...)
	}
	panic(fmt.Sprintf("unexpected mono type %T", t))
}

// ApplyPoly is ApplyMono for schemes. The variable bound by a quantifier
// shadows any replacement s holds for it.
func (s Substitution) ApplyPoly(t PolyType) PolyType {
	switch t := t.(type) {
	case MonoType:
		return s.ApplyMono(t)
	case TypeQuantifier:
		return TypeQuantifier{Bound: t.Bound, Body: s.Without(t.Bound).ApplyPoly(t.Body)}
	}
	panic(fmt.Sprintf("unexpected poly type %T", t))
}

func (s Substitution) ApplyContext(c Context) Context {
	if s.Len() == 0 {
		return c
	}
	m := emptyMap
	for name, t := range c.All() {
		m = m.Set(name, s.ApplyPoly(t))
	}
	return Context{m: m}
}

// Compose returns the substitution equivalent to applying other, then s.
//
// Every binding of s is kept with s applied to it; bindings of other whose
// name s does not bind are added with s applied to them.
func (s Substitution) Compose(other Substitution) Substitution {
	m := emptyMap
	for name, t := range s.All() {
		m = m.Set(name, s.ApplyMono(t))
	}
	for name, t := range other.All() {
		if _, ok := s.Get(name); ok {
			continue
		}
		m = m.Set(name, s.ApplyMono(t))
	}
	return Substitution{m: m}
}

func (s Substitution) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for name, t := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(" ↦ ")
		sb.WriteString(t.String())
	}
	sb.WriteString("}")
	return sb.String()
}
