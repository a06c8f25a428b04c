package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/noxe/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		searchContent bool
		searchLimit   int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes",
		Long: `Search for notes matching the query.

By default the query is a case-insensitive regular expression matched
against note names. With --content, note contents are searched through
a full-text index built for this invocation.

Examples:
  noxe search report               # names matching "report"
  noxe search '^2025-'             # regex on names
  noxe search --content sqlite     # full-text content search`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			query := strings.Join(args, " ")

			if searchContent {
				results, err := s.SearchContent(query, searchLimit)
				if err != nil {
					return err
				}
				fmt.Println("Found notes:")
				for _, r := range results {
					if r.Snippet != "" {
						fmt.Printf("%s\t%s\n", r.Path, r.Snippet)
					} else {
						fmt.Println(r.Path)
					}
				}
				return nil
			}

			entries, err := s.SearchNames(query)
			if err != nil {
				return err
			}
			fmt.Println("Found notes:")
			for _, e := range entries {
				fmt.Println(e.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&searchContent, "content", "c", false, "Search note contents instead of names")
	cmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum content-search results")

	return cmd
}
