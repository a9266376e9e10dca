package util

import (
	"sort"

	"github.com/xtgo/set"
)

// NameSet is a sorted set of names backed by a slice.
// The zero value is the empty set, and no operation modifies its receiver,
// so a NameSet can be shared freely
type NameSet []string

func NewNameSet(names ...string) NameSet {
	data := make(sort.StringSlice, len(names))
	copy(data, names)
	sort.Sort(data)
	return NameSet(data[:set.Uniq(data)])
}

func (s NameSet) Union(other NameSet) NameSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	data := make(sort.StringSlice, 0, len(s)+len(other))
	data = append(append(data, s...), other...)
	return NameSet(data[:set.Union(data, len(s))])
}

func (s NameSet) Diff(other NameSet) NameSet {
	if len(s) == 0 || len(other) == 0 {
		return s
	}
	data := make(sort.StringSlice, 0, len(s)+len(other))
	data = append(append(data, s...), other...)
	return NameSet(data[:set.Diff(data, len(s))])
}

func (s NameSet) Remove(name string) NameSet {
	if !s.Contains(name) {
		return s
	}
	return s.Diff(NameSet{name})
}

func (s NameSet) Contains(name string) bool {
	i := sort.SearchStrings(s, name)
	return i < len(s) && s[i] == name
}

func (s NameSet) Len() int {
	return len(s)
}
