package filefilter

// Filter decides whether an [Entry] is accepted.
//
// Implementations must be pure with respect to the state of the file system at call time and must not mutate shared state during evaluation.
// Filters put into a [Set] must be comparable, see [Set.Add].
type Filter interface {
	Accept(e Entry) bool
}

// funcFilter is always used by pointer, so each [Func] call yields a distinct filter.
type funcFilter struct {
	fn func(Entry) bool
}

var _ Filter = (*funcFilter)(nil)

func (f *funcFilter) Accept(e Entry) bool {
	return f.fn(e)
}

// Func adapts fn into a [Filter].
//
// Function values are not comparable in go, so the returned filter compares by identity: two calls with the same fn are two different members of a [Set].
func Func(fn func(Entry) bool) Filter {
	return &funcFilter{fn: fn}
}

// NotFilter negates the wrapped Filter. A NotFilter without a Filter rejects everything.
type NotFilter struct {
	Filter Filter
}

var _ Filter = NotFilter{}

func (f NotFilter) Accept(e Entry) bool {
	if f.Filter == nil {
		return false
	}

	return !f.Filter.Accept(e)
}
