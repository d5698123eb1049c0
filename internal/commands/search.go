package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitrack/internal/engine"
	"habitrack/internal/parser"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search trackers by name",
	Long: `Search trackers with a case-insensitive substring match on the name,
within the category list of the chosen date. An empty query falls back to
the plain list.`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()

		req := engine.ListRequest{
			Filter: engine.FilterSearch,
			Query:  strings.Join(args, " "),
		}
		if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
			date, err := parser.ParseDate(dateFlag)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.Date = date
		}

		result := a.engine.Tasks(ctx, req)
		if req.Query != "" {
			fmt.Printf("Search results for '%s':\n", req.Query)
		}
		renderList(ctx, a, result)
	}),
}

func init() {
	searchCmd.Flags().StringP("date", "d", "", "Date: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, ±X days")
}
