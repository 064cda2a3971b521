// filefilter-ls lists the files and directories accepted by the filters.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/fardream/filefilter"
	"github.com/fardream/filefilter/cmd"
)

func main() {
	newCmd().Execute()
}

type Cmd struct {
	*cobra.Command

	dir string

	cmd.FilterCmd

	cmd.LogCmd
}

const longDescription = `filefilter-ls walks a directory and prints the path of every entry accepted by the filters, relative to the directory.

Every sub directory is walked, even if the directory itself is rejected.
` + cmd.FilterDescription

func newCmd() *Cmd {
	c := &Cmd{
		Command: &cobra.Command{
			Use:   "filefilter-ls",
			Short: "list the entries of a directory accepted by the filters.",
			Long:  longDescription,
			Args:  cobra.NoArgs,
		},
		dir: ".",
	}

	c.SetupFilterCobra(c.Command)
	c.Flags().StringVarP(&c.dir, "dir", "i", c.dir, "directory to walk")
	c.MarkFlagDirname("dir")

	c.SetupLogCobra(c.Command)

	c.Run = c.run

	return c
}

func (c *Cmd) run(*cobra.Command, []string) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c.InitLog()

	absdir := cmd.GetOrPanic(filepath.Abs(c.dir))
	cmd.Logger().Debug("walk dir", "dir", c.dir, "absdir", absdir)

	fs := osfs.New(absdir)

	cmd.OrPanic(filefilter.DumpDir(ctx, fs, ".", c.GetFilter(), os.Stdout))
}
