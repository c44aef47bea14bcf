package commands

import (
	"github.com/ncobase/pager/paging"
	"github.com/spf13/cobra"
)

// pageOutput is the JSON form of a single page
type pageOutput struct {
	Page       int   `json:"page"`
	Items      []any `json:"items"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

func newPageCommand(a *app) *cobra.Command {
	var (
		size   int
		page   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "page [file]",
		Short: "Print one page of the input",
		Long:  `Print one zero-based page of the input. Pages past the end print nothing.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args, cmd.InOrStdin(), a.inputJSON)
			if err != nil {
				return err
			}

			p, err := paging.New(items, a.pageSize(size))
			if err != nil {
				return err
			}
			a.logger.Debugf(cmd.Context(), "indexed %d items into %d pages", p.Len(), p.TotalPages())

			got := p.Get(page)
			if got == nil {
				got = make([]any, 0)
			}
			out := pageOutput{
				Page:       page,
				Items:      got,
				TotalPages: p.TotalPages(),
				HasMore:    page+1 >= 0 && page+1 < p.TotalPages(),
			}
			return writeItems(cmd.OutOrStdout(), format, out, got)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "page size (default from config)")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "zero-based page number")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or json)")
	return cmd
}
