package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/noxe/pkg/service"
)

func NewEditCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [ref]",
		Short: "Edit a note",
		Long: `Open a note's content file in the configured editor.

Resolution works like preview: a bare name is searched in the note
directory, a path is used directly, and a directory note opens its
main file.

Examples:
  noxe edit thesis
  noxe edit notes/Ideas.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ref, err := refOrCwd(args)
			if err != nil {
				return err
			}
			return s.EditNote(ref)
		},
	}

	return cmd
}
