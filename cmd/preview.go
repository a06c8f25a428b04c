package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/noxe/pkg/service"
)

func NewPreviewCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [ref]",
		Short: "Preview a note",
		Long: `Preview a note in the configured preview program.

The reference is either a path or a bare note name. Bare names are
searched case-insensitively in the note directory; when several notes
match, a numbered prompt asks which one to open. Without a reference the
current directory is previewed.

Examples:
  noxe preview thesis              # search by name
  noxe preview notes/Ideas.md      # explicit path
  noxe preview                     # current directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ref, err := refOrCwd(args)
			if err != nil {
				return err
			}
			if err := s.PreviewNote(ref); err != nil {
				return err
			}

			fmt.Printf("Previewing note '%s'\n", ref)
			return nil
		},
	}

	return cmd
}

// refOrCwd returns the positional note reference, defaulting to the
// current directory.
func refOrCwd(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}
