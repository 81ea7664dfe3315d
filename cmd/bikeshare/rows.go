package main

import (
	"fmt"
	"go-bikeshare/internal/render"

	"github.com/spf13/cobra"
)

var (
	rowsFilter filterFlags
	rowsCursor int
	rowsPages  int
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Show raw trips five at a time",
	Long: `Show the filtered raw trips in pages of five rows.

Examples:
  bikeshare rows --city chicago                 # first five trips
  bikeshare rows --city chicago --cursor 5      # next five
  bikeshare rows --city washington --pages 3    # fifteen trips in three pages`,
	RunE: runRows,
}

func init() {
	rootCmd.AddCommand(rowsCmd)

	rowsFilter.register(rowsCmd)
	rowsCmd.Flags().IntVar(&rowsCursor, "cursor", 0, "row offset to start from")
	rowsCmd.Flags().IntVar(&rowsPages, "pages", 1, "number of pages to print")
}

func runRows(cmd *cobra.Command, args []string) error {
	spec, err := rowsFilter.spec()
	if err != nil {
		return err
	}
	if rowsCursor < 0 {
		return fmt.Errorf("cursor must not be negative")
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	cursor := rowsCursor
	for i := 0; i < rowsPages; i++ {
		page, err := svc.Page(cmd.Context(), spec, cursor)
		if err != nil {
			return err
		}
		if err := render.Page(cmd.OutOrStdout(), page); err != nil {
			return err
		}
		if page.Done {
			break
		}
		cursor = page.Next
	}
	return nil
}
