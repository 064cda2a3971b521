package filefilter

import (
	"fmt"
	"reflect"
	"slices"
)

// Set is a mutable collection of unique [Filter]s, and a [Filter] itself: an entry is accepted when all the members accept it.
// An empty set accepts everything.
//
// Members are unique by go equality: value types compare by value, so two ExtensionFilter{Ext: ".png"} are the same member,
// while pointer types such as the ones returned by [Func] or [NewAnyFilter] compare by identity.
//
// The zero value is an empty set ready to use.
// A Set is not safe for concurrent use. Mutations should be done by a single owner, other goroutines should evaluate a [Set.Snapshot].
type Set struct {
	filters []Filter
	index   map[Filter]int
}

var _ Filter = (*Set)(nil)

// NewSet creates a set containing the given filters.
func NewSet(filters ...Filter) *Set {
	s := &Set{}
	s.Add(filters...)

	return s
}

// Add adds the filters into the set. Filters already in the set and nil filters, typed nil pointers included, are ignored.
// A set must not contain itself, directly or through another member, or Accept never returns.
//
// Add panics if the dynamic value of a filter is not comparable, for example a struct value holding a slice.
// Use a pointer for such filters.
func (s *Set) Add(filters ...Filter) {
	for _, f := range filters {
		if isNilFilter(f) {
			continue
		}
		if !reflect.ValueOf(f).Comparable() {
			panic(fmt.Sprintf("filefilter: filter of type %T is not comparable", f))
		}
		if s.index == nil {
			s.index = make(map[Filter]int)
		}
		if _, in := s.index[f]; in {
			continue
		}
		s.index[f] = len(s.filters)
		s.filters = append(s.filters, f)
	}
}

func isNilFilter(f Filter) bool {
	if f == nil {
		return true
	}

	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Remove removes f from the set and reports whether it was a member.
func (s *Set) Remove(f Filter) bool {
	if !s.Contains(f) {
		return false
	}

	i := s.index[f]
	delete(s.index, f)
	s.filters = slices.Delete(s.filters, i, i+1)
	for j := i; j < len(s.filters); j++ {
		s.index[s.filters[j]] = j
	}

	return true
}

// Clear removes all the members.
func (s *Set) Clear() {
	clear(s.index)
	clear(s.filters)
	s.filters = s.filters[:0]
}

// Contains reports whether f is in the set.
func (s *Set) Contains(f Filter) bool {
	if f == nil || len(s.index) == 0 || !reflect.ValueOf(f).Comparable() {
		return false
	}
	_, in := s.index[f]

	return in
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.filters)
}

// Members returns a copy of the members.
func (s *Set) Members() []Filter {
	return slices.Clone(s.filters)
}

// Accept returns true if all the members accept e. Evaluation stops at the first member rejecting e,
// and the order members are evaluated in is unspecified.
func (s *Set) Accept(e Entry) bool {
	for _, f := range s.filters {
		if !f.Accept(e) {
			return false
		}
	}

	return true
}

// Snapshot returns an immutable conjunction of the current members.
// Later mutations of s are not visible through the snapshot.
func (s *Set) Snapshot() *AllFilter {
	return NewAllFilter(s.filters...)
}
