package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a category",
	Long:  "Create a category. Creating a title that already exists is a no-op.",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		category, err := a.engine.CreateCategory(context.Background(), title)
		if err != nil {
			fmt.Printf("Error creating category: %v\n", err)
			return
		}
		fmt.Printf("✅ Category %q ready\n", category.Title)
	}),
}

var categoryListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List categories with their trackers",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		categories, err := a.engine.CategoryRepo().ListAll(ctx)
		if err != nil {
			fmt.Printf("Error fetching categories: %v\n", err)
			return
		}
		if len(categories) == 0 {
			fmt.Println("No categories yet. Use 'habitrack add' to create your first tracker.")
			return
		}
		for _, category := range categories {
			fmt.Printf("%s (%d)\n", category.Title, len(category.Trackers))
			for _, tracker := range category.Trackers {
				fmt.Printf("  %s %s — %s\n", tracker.Emoji, tracker.Name, tracker.Schedule.Describe())
			}
		}
	}),
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
}
