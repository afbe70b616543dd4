package cmd

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dtreelab/dtree-sim/dtree"
	"github.com/dtreelab/dtree-sim/sim"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the directory tree demonstration",
	Run:   runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(*cobra.Command, []string) {
	must := func(err error) {
		if err != nil {
			logrus.WithError(err).Fatal("Demo step failed")
		}
	}

	// Build /a/b/c/ through a session, descending one level after each mkdir,
	// then reset to the root and enumerate.
	session := sim.NewSession()
	must(session.Mkdir("a"))
	must(session.Chdir("a"))
	must(session.Mkdir("b"))
	must(session.Chdir("b"))
	must(session.Mkdir("c"))
	must(session.Chdir())

	paths, err := session.Paths()
	must(err)
	if len(paths) != 1 || paths[0] != "/a/b/c/" {
		must(errors.Errorf("unexpected session paths: %v", paths))
	}
	logrus.WithField("paths", paths).Info("Session paths")

	// Build a multi-branch tree directly, resolving subdirectories to create
	// nested entries.
	tree := dtree.New()
	must(tree.Mkdir("a"))
	must(tree.Mkdir("z"))

	sub, err := tree.Resolve("a")
	must(err)
	must(sub.Mkdir("b"))
	must(sub.Mkdir("c"))

	sub, err = tree.Resolve("a", "c")
	must(err)
	must(sub.Mkdir("d"))

	paths = tree.Paths()
	sort.Strings(paths)
	logrus.WithField("paths", paths).Info("Tree paths")

	must(tree.Traverse(func(entry *dtree.DEnt, relativePath string) error {
		logrus.WithField("path", relativePath).Debug("Visited entry")
		return nil
	}))

	d := dtree.Diff(session.Root(), tree)
	logrus.WithField("status", d.Status).Info("Compared session tree against demo tree")
}
