package commands

import (
	"fmt"

	"github.com/ncobase/pager/paging"
	"github.com/spf13/cobra"
)

func newWalkCommand(a *app) *cobra.Command {
	var (
		size   int
		from   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Print every page in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			items, err := loadItems(args, cmd.InOrStdin(), a.inputJSON)
			if err != nil {
				return err
			}

			p, err := paging.New(items, a.pageSize(size))
			if err != nil {
				return err
			}
			p.ResetCursor(from - 1)

			w := cmd.OutOrStdout()
			for p.HasMore() {
				got := p.Next()
				out := pageOutput{
					Page:       p.Cursor(),
					Items:      got,
					TotalPages: p.TotalPages(),
					HasMore:    p.HasMore(),
				}
				if format == "text" {
					if _, err := fmt.Fprintf(w, "--- page %d/%d ---\n", p.Cursor()+1, p.TotalPages()); err != nil {
						return err
					}
				}
				if err := writeItems(w, format, out, got); err != nil {
					return err
				}
			}
			a.logger.Debugf(cmd.Context(), "walked to page %d of %d", p.Cursor(), p.TotalPages())
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "page size (default from config)")
	cmd.Flags().IntVar(&from, "from", 0, "zero-based page to start from")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or json lines)")
	return cmd
}
