package filefilter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// treeEntryInfo exposes an [object.TreeEntry] as [fs.FileInfo].
// Size is unknown without reading the blob and is always 0.
type treeEntryInfo struct {
	entry object.TreeEntry
	mode  fs.FileMode
}

var _ fs.FileInfo = (*treeEntryInfo)(nil)

func newTreeEntryInfo(e object.TreeEntry) (*treeEntryInfo, error) {
	mode, err := e.Mode.ToOSFileMode()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mode %s of %s: %w", e.Mode, e.Name, err)
	}

	return &treeEntryInfo{entry: e, mode: mode}, nil
}

func (i *treeEntryInfo) Name() string       { return i.entry.Name }
func (i *treeEntryInfo) Size() int64        { return 0 }
func (i *treeEntryInfo) Mode() fs.FileMode  { return i.mode }
func (i *treeEntryInfo) ModTime() time.Time { return time.Time{} }
func (i *treeEntryInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *treeEntryInfo) Sys() any           { return i.entry }

// WalkTree walks the git tree and calls fn with every entry accepted by filter.
// prepath is prepended to the path of the entries.
//
// Like [WalkDir], all sub trees are descended into. Submodules are skipped.
func WalkTree(ctx context.Context, prepath string, tree *object.Tree, filter Filter, fn func(Entry) error) error {
	for _, v := range tree.Entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fullpath := joinPath(prepath, v.Name)
		switch v.Mode {
		case filemode.Submodule:
			logger.Warn("ignoring submodule", "path", fullpath)
			continue
		case filemode.Empty:
			continue
		}

		info, err := newTreeEntryInfo(v)
		if err != nil {
			return err
		}
		entry := NewEntryWithInfo(fullpath, info)
		if filter.Accept(entry) {
			if err := fn(entry); err != nil {
				return err
			}
		}

		if v.Mode != filemode.Dir {
			continue
		}
		subtree, err := tree.Tree(v.Name)
		if err != nil {
			return fmt.Errorf("failed to obtain tree %s: %w", fullpath, err)
		}

		err = WalkTree(ctx, fullpath, subtree, filter, fn)
		if err != nil {
			return errorf(err, "failed to walk tree %s: %w", fullpath, err)
		}
	}

	return nil
}

// DumpTree writes the path of every entry of the tree accepted by filter to output, one per line.
func DumpTree(ctx context.Context, prepath string, tree *object.Tree, filter Filter, output io.Writer) error {
	return WalkTree(ctx, prepath, tree, filter, func(e Entry) error {
		_, err := fmt.Fprintln(output, e.Path)
		return err
	})
}
