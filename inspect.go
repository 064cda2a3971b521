package filefilter

import (
	"errors"
	"io/fs"
)

// FailurePolicy decides the result of a filter when the entry cannot be inspected.
type FailurePolicy uint8

const (
	FailClosed FailurePolicy = iota // FailClosed
	FailOpen                        // FailOpen
)

func (p FailurePolicy) String() string {
	switch p {
	case FailClosed:
		return "fail-closed"
	case FailOpen:
		return "fail-open"
	default:
		return "unknown"
	}
}

func (p FailurePolicy) onFailure(filter string, err error) bool {
	r := p == FailOpen
	logger.Warn("failed to inspect entry", "filter", filter, "policy", p.String(), "accept", r, "err", err)

	return r
}

// ExistsFilter accepts an entry if it exists.
// A missing entry is rejected, any other inspection failure is decided by OnFailure.
type ExistsFilter struct {
	OnFailure FailurePolicy
}

var _ Filter = ExistsFilter{}

func (f ExistsFilter) Accept(e Entry) bool {
	_, err := e.Stat()
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		return false
	default:
		return f.OnFailure.onFailure("exists", err)
	}
}

// Kind is the type of entry matched by [KindFilter].
type Kind uint8

const (
	KindRegular Kind = iota // Regular
	KindDir                 // Dir
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

func (k Kind) matches(mode fs.FileMode) bool {
	switch k {
	case KindRegular:
		return mode.IsRegular()
	case KindDir:
		return mode.IsDir()
	default:
		return false
	}
}

// KindFilter accepts an entry if it is of the given [Kind].
// Entries that cannot be inspected, missing ones included, are decided by OnFailure.
type KindFilter struct {
	Kind      Kind
	OnFailure FailurePolicy
}

var _ Filter = KindFilter{}

func (f KindFilter) Accept(e Entry) bool {
	info, err := e.Stat()
	if err != nil {
		return f.OnFailure.onFailure(f.Kind.String(), err)
	}

	return f.Kind.matches(info.Mode())
}
