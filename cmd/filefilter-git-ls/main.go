// filefilter-git-ls lists the entries of a git tree accepted by the filters, and optionally writes the filtered tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"

	"github.com/fardream/filefilter"
	"github.com/fardream/filefilter/cmd"
)

func main() {
	newCmd().Execute()
}

type Cmd struct {
	*cobra.Command

	dir    string
	commit string
	tree   string
	branch string
	head   bool

	write bool

	cmd.FilterCmd

	outfilename string

	cmd.LogCmd
}

const longDescription = `filefilter-git-ls lists the entries of a git tree accepted by the filters.

The input directory is the .git folder of a repository. The tree is selected by commit, tree hash, branch, or head.
With --write, a new tree containing only the accepted files is stored into the same repository and its hash is printed
instead of the entry list. Directories are kept in the new tree if any of their files is.
` + cmd.FilterDescription

func newCmd() *Cmd {
	c := &Cmd{
		Command: &cobra.Command{
			Use:   "filefilter-git-ls",
			Short: "list the entries of a git tree accepted by the filters.",
			Long:  longDescription,
			Args:  cobra.NoArgs,
		},
	}

	c.Run = c.run

	c.SetupFilterCobra(c.Command)
	c.Flags().StringVarP(&c.dir, "dir", "i", c.dir, "input directory containing git repo")
	c.MarkFlagRequired("dir")
	c.MarkFlagDirname("dir")

	c.Flags().StringVarP(&c.commit, "commit", "c", c.commit, "commit")
	c.Flags().StringVarP(&c.tree, "tree", "t", c.tree, "tree")
	c.Flags().StringVarP(&c.branch, "branch", "b", c.branch, "branch")
	c.Flags().BoolVar(&c.head, "head", c.head, "use head")
	c.MarkFlagsMutuallyExclusive("commit", "tree", "branch", "head")

	c.Flags().BoolVarP(&c.write, "write", "w", c.write, "write the filtered tree into the repo and print its hash")

	c.Flags().StringVarP(&c.outfilename, "output", "o", c.outfilename, "output file name, use - or leave empty for stdout")
	c.MarkFlagFilename("output")

	c.SetupLogCobra(c.Command)

	return c
}

func (c *Cmd) run(*cobra.Command, []string) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c.InitLog()

	if c.write {
		cmd.OrPanic(c.CheckTreeWrite())
	}

	chc := cache.NewObjectLRUDefault()

	fs := cmd.NewGitStorage(c.dir, chc)

	var hash plumbing.Hash
	switch {
	case c.branch != "":
		branch := cmd.GetOrPanic(fs.Reference(plumbing.NewBranchReferenceName(c.branch)))
		if branch.Hash().IsZero() {
			branch = cmd.GetOrPanic(fs.Reference(branch.Target()))
		}
		hash = cmd.GetOrPanic(object.GetCommit(fs, branch.Hash())).TreeHash
	case c.commit != "":
		hash = cmd.GetOrPanic(object.GetCommit(fs, cmd.MustHash(c.commit))).TreeHash
	case c.head:
		head := cmd.GetOrPanic(fs.Reference(plumbing.HEAD))
		if head.Hash().IsZero() {
			head = cmd.GetOrPanic(fs.Reference(head.Target()))
		}
		hash = cmd.GetOrPanic(object.GetCommit(fs, head.Hash())).TreeHash
	case c.tree != "":
		hash = cmd.MustHash(c.tree)
	default:
		cmd.OrPanic(fmt.Errorf("require one of branch, head, tree, or commit"))
	}

	tree := cmd.GetOrPanic(object.GetTree(fs, hash))

	filter := c.GetFilter()

	var out io.WriteCloser
	if c.outfilename == "" || c.outfilename == "-" {
		out = os.Stdout
	} else {
		out = cmd.GetOrPanic(os.Create(c.outfilename))
		defer out.Close()
	}

	if !c.write {
		cmd.OrPanic(filefilter.DumpTree(ctx, "", tree, filter, out))
		return
	}

	newtree := cmd.GetOrPanic(filefilter.FilterTree(ctx, tree, "", fs, filter))
	if newtree == nil {
		cmd.Logger().Warn("all entries are filtered out, no tree written", "tree", hash)
		return
	}
	cmd.Logger().Debug("filtered tree", "from", hash, "to", newtree.Hash)
	fmt.Fprintln(out, newtree.Hash)
}
