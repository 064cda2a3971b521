package filefilter

// CachedFilter records the result of the underlying filter for each path it sees - the cache is not concurrent safe.
type CachedFilter struct {
	filter Filter

	cache map[string]bool
}

var _ Filter = (*CachedFilter)(nil)

func (f *CachedFilter) Accept(e Entry) bool {
	r, in := f.cache[e.Path]
	if in {
		return r
	}

	r = f.filter.Accept(e)
	f.cache[e.Path] = r

	return r
}

func NewCachedFilter(underlying Filter) *CachedFilter {
	return &CachedFilter{
		filter: underlying,
		cache:  make(map[string]bool),
	}
}

// Reset clears up the cache
func (f *CachedFilter) Reset() {
	clear(f.cache)
}
