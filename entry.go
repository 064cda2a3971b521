package filefilter

import (
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"
)

// Entry describes a file or directory handed to a [Filter].
//
// Path is slash separated.
// Metadata is either supplied up front (for example from a directory listing or a git tree) or obtained lazily from the file system.
type Entry struct {
	Path string

	fs   billy.Basic
	info fs.FileInfo
}

// NewEntry creates an entry for p which is inspected through fsys.
func NewEntry(fsys billy.Basic, p string) Entry {
	return Entry{Path: p, fs: fsys}
}

// NewEntryWithInfo creates an entry for p with known file info.
func NewEntryWithInfo(p string, info fs.FileInfo) Entry {
	return Entry{Path: p, info: info}
}

// Name returns the last element of the path.
func (e Entry) Name() string {
	return path.Base(e.Path)
}

// Stat returns the file info of the entry. Errors are always [*InspectionError].
func (e Entry) Stat() (fs.FileInfo, error) {
	if e.info != nil {
		return e.info, nil
	}
	if e.fs == nil {
		return nil, &InspectionError{Path: e.Path, Err: ErrNoFileSystem}
	}

	info, err := e.fs.Stat(e.Path)
	if err != nil {
		return nil, &InspectionError{Path: e.Path, Err: err}
	}

	return info, nil
}
