package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSet(t *testing.T) {
	testCases := []struct {
		name     string
		got      NameSet
		expected NameSet
	}{
		{"new sorts and dedupes", NewNameSet("b", "a", "b", "c"), NameSet{"a", "b", "c"}},
		{"union", NewNameSet("a", "c").Union(NewNameSet("b", "c")), NameSet{"a", "b", "c"}},
		{"union with empty", NewNameSet("a").Union(nil), NameSet{"a"}},
		{"diff", NewNameSet("a", "b", "c").Diff(NewNameSet("b", "d")), NameSet{"a", "c"}},
		{"diff everything", NewNameSet("a").Diff(NewNameSet("a")), NameSet{}},
		{"remove", NewNameSet("t0", "t1").Remove("t0"), NameSet{"t1"}},
		{"remove absent", NewNameSet("t0").Remove("t9"), NameSet{"t0"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, []string(testCase.expected), append([]string{}, testCase.got...))
		})
	}
}

func TestNameSetDoesNotModifyReceiver(t *testing.T) {
	s := NewNameSet("a", "b")
	_ = s.Union(NewNameSet("c"))
	_ = s.Diff(NewNameSet("a"))
	assert.Equal(t, NameSet{"a", "b"}, s)
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse([]int{})))
}
