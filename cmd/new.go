package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/noxe/pkg/models"
	"github.com/mattsolo1/noxe/pkg/service"
)

func NewNewCmd(svc **service.Service) *cobra.Command {
	var (
		noteAuthor   string
		noteKeywords []string
		noteType     string
		singleFile   bool
		noteTemplate string
		withMetadata bool
		openEditor   bool
	)

	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create a new note",
		Long: `Create a new note at the given path.

If the path includes a .md or .typ extension the note type is inferred
and the note is created as a single file. Otherwise a directory note is
created: the template skeleton is materialized and a main file written
inside it.

Examples:
  noxe new Ideas.md                # single markdown file-note
  noxe new thesis                  # directory note with main.typ
  noxe new -t md journal           # directory note with main.md
  noxe new -k go -k cli tooling    # with metadata keywords
  noxe new -T layout.yaml report   # from a template file
  noxe new --metadata=false scratch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			notePath := args[0]

			var opts []service.CreateOption
			if cmd.Flags().Changed("type") {
				t, err := models.ParseNoteType(noteType)
				if err != nil {
					return err
				}
				opts = append(opts, service.OfType(t))
			}
			if singleFile {
				opts = append(opts, service.AsSingleFile())
			}
			if cmd.Flags().Changed("author") {
				opts = append(opts, service.WithAuthor(noteAuthor))
			}
			if len(noteKeywords) > 0 {
				opts = append(opts, service.WithKeywords(noteKeywords))
			}
			if !withMetadata {
				opts = append(opts, service.WithoutMetadata())
			}
			if cmd.Flags().Changed("template") {
				opts = append(opts, service.WithTemplateFile(noteTemplate))
			}

			mainPath, err := s.CreateNote(notePath, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("Note '%s' created successfully!\n", notePath)

			if openEditor {
				return s.EditNote(mainPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&noteAuthor, "author", "a", "", "The author of the note (defaults to config/NOXE_AUTHOR)")
	cmd.Flags().StringArrayVarP(&noteKeywords, "keywords", "k", nil, "Keywords for the note metadata (repeatable)")
	cmd.Flags().StringVarP(&noteType, "type", "t", "typ", "Note type (md|typ)")
	cmd.Flags().BoolVarP(&singleFile, "single-file", "s", false, "Create the note as a single file")
	cmd.Flags().StringVarP(&noteTemplate, "template", "T", "", "Path to a YAML note template")
	cmd.Flags().BoolVarP(&withMetadata, "metadata", "m", true, "Prepend a metadata block to the main file")
	cmd.Flags().BoolVarP(&openEditor, "edit", "e", false, "Open the created note in the editor")

	return cmd
}
