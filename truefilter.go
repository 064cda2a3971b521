package filefilter

// TrueFilter accepts any entry.
type TrueFilter struct{}

var _ Filter = TrueFilter{}

func (TrueFilter) Accept(Entry) bool {
	return true
}

// Always is the filter accepting everything, the neutral element of [Set] and [AllFilter].
var Always Filter = TrueFilter{}
