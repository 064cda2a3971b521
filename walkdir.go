package filefilter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// WalkDir walks the directory root of fsys and calls fn with every entry accepted by filter.
//
// Every directory is descended into, whether accepted or not, so filters on files (such as [ExtensionFilter]) do not prune the walk.
// Entries of a directory are visited in lexical order. The root itself is not passed to filter.
//
// root must be an existing directory.
func WalkDir(ctx context.Context, fsys billy.Filesystem, root string, filter Filter, fn func(Entry) error) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to stat dir %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	return walkDir(ctx, fsys, root, filter, fn)
}

func walkDir(ctx context.Context, fsys billy.Filesystem, root string, filter Filter, fn func(Entry) error) error {
	infos, err := fsys.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read dir %s: %w", root, err)
	}
	slices.SortFunc(infos, func(a, b fs.FileInfo) int { return strings.Compare(a.Name(), b.Name()) })

	for _, info := range infos {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fullpath := filepath.ToSlash(fsys.Join(root, info.Name()))
		entry := Entry{Path: fullpath, fs: fsys, info: info}
		if filter.Accept(entry) {
			if err := fn(entry); err != nil {
				return err
			}
		}

		if info.IsDir() {
			if err := walkDir(ctx, fsys, fullpath, filter, fn); err != nil {
				return errorf(err, "failed to walk dir %s: %w", fullpath, err)
			}
		}
	}

	return nil
}

// DumpDir writes the path of every entry under root accepted by filter to output, one per line.
func DumpDir(ctx context.Context, fsys billy.Filesystem, root string, filter Filter, output io.Writer) error {
	return WalkDir(ctx, fsys, root, filter, func(e Entry) error {
		_, err := fmt.Fprintln(output, e.Path)
		return err
	})
}
