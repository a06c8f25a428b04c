package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/noxe/pkg/render"
	"github.com/mattsolo1/noxe/pkg/service"
)

func NewListCmd(svc **service.Service) *cobra.Command {
	var (
		listCategories bool
		sortBy         string
		number         int
		terse          bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List notes in the note directory",
		Aliases: []string{"ls"},
		Long: `List notes in the note directory.

The default output is a tree of root-relative note paths. Sorted modes
print a flat listing instead.

Examples:
  noxe list                        # tree of all notes
  noxe list --categories           # tree of category directories
  noxe list --sort category        # one tree per category
  noxe list --sort modified -n 10  # ten most recently modified
  noxe list --sort name --terse    # sorted bare names`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			entries, err := s.ListNotes(listCategories)
			if err != nil {
				return err
			}

			mode := render.SortMode(sortBy)
			switch mode {
			case render.SortNone, render.SortName, render.SortCreated, render.SortModified, render.SortCategory:
			default:
				return fmt.Errorf("unknown sort mode %q (name|created|modified|category)", sortBy)
			}

			if mode == render.SortCategory {
				render.ByCategory(os.Stdout, entries)
				return nil
			}

			render.SortEntries(entries, mode)
			if mode == render.SortCreated || mode == render.SortModified {
				entries = render.Truncate(entries, number)
			}

			paths := render.Paths(entries, terse)
			if mode == render.SortNone {
				render.Tree(os.Stdout, paths)
			} else {
				render.Flat(os.Stdout, paths)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listCategories, "categories", false, "List categories instead of notes")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort mode: name, created, modified or category")
	cmd.Flags().IntVarP(&number, "number", "n", 10, "Entries to keep for created/modified sorts")
	cmd.Flags().BoolVar(&terse, "terse", false, "Print bare names instead of relative paths")

	return cmd
}
