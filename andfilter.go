package filefilter

// AllFilter combines multiple [Filter] into one [Filter] with an "and" operation, the entry will only be accepted when all the filters accept it.
// An AllFilter with no filters accepts everything.
//
// Unlike [Set], the filters of an AllFilter are fixed at creation, so it can be shared across goroutines as long as the filters can.
type AllFilter struct {
	filters []Filter
}

var _ Filter = (*AllFilter)(nil)

func (f *AllFilter) Accept(e Entry) bool {
	for _, sf := range f.filters {
		if !sf.Accept(e) {
			return false
		}
	}

	return true
}

// Len returns the number of filters combined.
func (f *AllFilter) Len() int {
	return len(f.filters)
}

// NewAllFilter creates a new filter with and operations. Nil filters, typed nil pointers included, are dropped.
func NewAllFilter(filters ...Filter) *AllFilter {
	f := &AllFilter{filters: make([]Filter, 0, len(filters))}
	for _, sf := range filters {
		if !isNilFilter(sf) {
			f.filters = append(f.filters, sf)
		}
	}

	return f
}
