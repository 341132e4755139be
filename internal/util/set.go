// Package util contains small generic helpers shared across gruut's
// internal packages.
package util

import (
	"sort"
	"strings"
)

// StringSet is a set of strings backed by a map, trimmed to the operations
// gruut's settings and pipeline packages actually need: membership,
// insertion, and an ordered string form for deterministic
// logging/debugging.
type StringSet map[string]bool

// NewStringSet builds a StringSet from zero or more seed slices.
func NewStringSet(of ...[]string) StringSet {
	s := StringSet{}
	for _, sl := range of {
		for _, v := range sl {
			s.Add(v)
		}
	}
	return s
}

// Add adds value to the set. Has no effect if it is already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	return s[value]
}

// Remove removes value from the set. Has no effect if absent.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Elements returns the set's contents as a slice, in no particular order.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}

// String shows the contents of the set, alphabetized for deterministic
// output.
func (s StringSet) String() string {
	convs := s.Elements()
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}
