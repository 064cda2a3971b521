// cmd package contains helper functions for various commands.
package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/spf13/cobra"

	"github.com/fardream/filefilter"
)

var logger *slog.Logger = slog.Default()

// Return the logger for the command
func Logger() *slog.Logger {
	return logger
}

// OrPanic logs the error and exits if err is not nil
func OrPanic(err error) {
	if err != nil {
		logger.Error("error", "err", err)
		os.Exit(1)
	}
}

// GetOrPanic checks if err is nil, exits if not, otherwise return a
func GetOrPanic[T any](a T, err error) T {
	OrPanic(err)

	return a
}

// initLogger creates a new [slog.TextHandler] with the given level.
func initLogger(level int) {
	loglevel := new(slog.LevelVar)
	loglevel.Set(slog.Level(level))
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: loglevel}))
	filefilter.SetLogger(logger)
}

// NewGitStorage obtains the absolute path to the dir and creates a new [filesystem.Storage]
func NewGitStorage(dir string, cache cache.Object) *filesystem.Storage {
	absdir := GetOrPanic(filepath.Abs(dir))

	if absdir != dir {
		logger.Debug("remap dir", "from", dir, "to", absdir)
	}

	return filesystem.NewStorage(osfs.New(absdir), cache)
}

// MustHash gets the 20 byte hash from string
func MustHash(s string) plumbing.Hash {
	if len(s) != 40 {
		OrPanic(fmt.Errorf("hex for hash %s doesn't have length 40", s))
	}

	b := GetOrPanic(hex.DecodeString(s))

	var r plumbing.Hash

	if copy(r[:], b) != 20 {
		OrPanic(fmt.Errorf("copied byte count is not 20"))
	}

	return r
}

// LogCmd contains cmd's log configuration.
type LogCmd struct {
	LogLevel int
}

func (c *LogCmd) InitLog() {
	initLogger(c.LogLevel)
}

func (c *LogCmd) SetupLogCobra(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.LogLevel, "log-level", c.LogLevel, "log level passing to slog.")
}

// FilterDescription explains how the filter flags combine.
const FilterDescription = `
Filters:
  An entry is listed only if it passes all the given filter flags.
  Repeated --ext or --prefix flags are alternatives: the entry passes if it matches one of them.
  Repeated --name flags are alternatives as well, while every --exclude-name rejects the entries it matches.
  --kind restricts the entries to regular files (file) or directories (dir).
  Entries that cannot be inspected are rejected, unless --fail-open is set.
  When writing a filtered git tree, only files are passed to the filters, so --kind dir cannot be used.
`

// FilterCmd are the command components building the filter.
type FilterCmd struct {
	Extensions   []string
	Names        []string
	ExcludeNames []string
	Prefixes     []string
	Kind         string
	FailOpen     bool
}

func (c *FilterCmd) SetupFilterCobra(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&c.Extensions, "ext", "x", c.Extensions, "extension to accept, case insensitive")
	cmd.Flags().StringArrayVar(&c.Names, "name", c.Names, "base name to accept")
	cmd.Flags().StringArrayVar(&c.ExcludeNames, "exclude-name", c.ExcludeNames, "base name to reject")
	cmd.Flags().StringArrayVarP(&c.Prefixes, "prefix", "p", c.Prefixes, "path prefix to accept")
	cmd.Flags().StringVarP(&c.Kind, "kind", "k", c.Kind, "kind of entry to accept, file or dir")
	cmd.Flags().BoolVar(&c.FailOpen, "fail-open", c.FailOpen, "accept entries that cannot be inspected")
}

func (c *FilterCmd) failurePolicy() filefilter.FailurePolicy {
	if c.FailOpen {
		return filefilter.FailOpen
	}

	return filefilter.FailClosed
}

// GetFilterSet builds the filter set described by the flags.
func (c *FilterCmd) GetFilterSet() (*filefilter.Set, error) {
	s := filefilter.NewSet()

	if len(c.Extensions) > 0 {
		s.Add(filefilter.NewAnyFilterForExtensions(c.Extensions...))
	}
	if len(c.Prefixes) > 0 {
		s.Add(filefilter.NewAnyFilterForPrefixes(c.Prefixes...))
	}
	if len(c.Names) > 0 {
		names := filefilter.NewAnyFilter()
		for _, n := range c.Names {
			names.Add(filefilter.NameFilter{Name: n})
		}
		s.Add(names)
	}
	for _, n := range c.ExcludeNames {
		s.Add(filefilter.NotFilter{Filter: filefilter.NameFilter{Name: n}})
	}

	switch c.Kind {
	case "":
	case "file":
		s.Add(filefilter.KindFilter{Kind: filefilter.KindRegular, OnFailure: c.failurePolicy()})
	case "dir":
		s.Add(filefilter.KindFilter{Kind: filefilter.KindDir, OnFailure: c.failurePolicy()})
	default:
		return nil, fmt.Errorf("unknown kind %s, must be file or dir", c.Kind)
	}

	logger.Debug("filter set", "members", s.Len())

	return s, nil
}

// CheckTreeWrite returns an error if the filters cannot select anything in [filefilter.FilterTree],
// which never passes directories to the filter.
func (c *FilterCmd) CheckTreeWrite() error {
	if c.Kind == "dir" {
		return fmt.Errorf("--kind dir selects no files, the filtered tree would always be empty")
	}

	return nil
}

// GetFilter returns the cached snapshot of the filter set described by the flags.
func (c *FilterCmd) GetFilter() filefilter.Filter {
	s := GetOrPanic(c.GetFilterSet())

	return filefilter.NewCachedFilter(s.Snapshot())
}
