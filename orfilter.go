package filefilter

// AnyFilter combines multiple [Filter] into one [Filter] with an "or" operation, the entry will be accepted if any one of the filters accepts it.
// An AnyFilter with no filters accepts nothing.
type AnyFilter struct {
	filters []Filter
}

var _ Filter = (*AnyFilter)(nil)

func (f *AnyFilter) Accept(e Entry) bool {
	for _, sf := range f.filters {
		if sf.Accept(e) {
			return true
		}
	}

	return false
}

func (f *AnyFilter) Add(filters ...Filter) {
	for _, sf := range filters {
		if !isNilFilter(sf) {
			f.filters = append(f.filters, sf)
		}
	}
}

func NewAnyFilter(filters ...Filter) *AnyFilter {
	f := &AnyFilter{}

	f.Add(filters...)

	return f
}

// NewAnyFilterForExtensions creates a new Any filter for all the extensions.
func NewAnyFilterForExtensions(exts ...string) *AnyFilter {
	r := &AnyFilter{
		filters: make([]Filter, 0, len(exts)),
	}

	for _, v := range exts {
		r.filters = append(r.filters, NewExtensionFilter(v))
	}

	return r
}

// NewAnyFilterForPrefixes creates a new Any filter for all the prefixes.
func NewAnyFilterForPrefixes(prefixes ...string) *AnyFilter {
	r := &AnyFilter{
		filters: make([]Filter, 0, len(prefixes)),
	}

	for _, v := range prefixes {
		r.filters = append(r.filters, PrefixFilter{Prefix: v})
	}

	return r
}
