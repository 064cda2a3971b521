package filefilter

import (
	"path"
	"strings"
)

// PrefixFilter accepts an entry if its path starts with the prefix.
type PrefixFilter struct {
	Prefix string
}

var _ Filter = PrefixFilter{}

func (f PrefixFilter) Accept(e Entry) bool {
	return strings.HasPrefix(e.Path, f.Prefix)
}

// NameFilter accepts an entry if the last element of its path is exactly Name.
type NameFilter struct {
	Name string
}

var _ Filter = NameFilter{}

func (f NameFilter) Accept(e Entry) bool {
	return e.Name() == f.Name
}

// ExtensionFilter accepts an entry if its extension equals Ext, ignoring case.
// Ext includes the leading dot, use [NewExtensionFilter] to normalize it.
type ExtensionFilter struct {
	Ext string
}

var _ Filter = ExtensionFilter{}

// NewExtensionFilter creates an [ExtensionFilter] for ext, which may be given with or without the leading dot.
func NewExtensionFilter(ext string) ExtensionFilter {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ExtensionFilter{Ext: ext}
}

func (f ExtensionFilter) Accept(e Entry) bool {
	return strings.EqualFold(path.Ext(e.Path), f.Ext)
}
