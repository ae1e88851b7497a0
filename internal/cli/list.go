package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/tempo/internal/engine"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks ranked by priority",
	Long: `List active tasks grouped by tier, highest priority first.

Examples:
  tempo list
  tempo list --completed
  tempo list --archived`,
	RunE: runList,
}

var (
	listCompleted bool
	listArchived  bool
)

func init() {
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Show completed tasks")
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Show archived tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	if listCompleted {
		printCompleted(app)
		return nil
	}
	if listArchived {
		printArchived(app)
		return nil
	}

	ranked := app.Store.Ranked()
	if len(ranked) == 0 {
		fmt.Println("No tasks. Add one with: tempo add \"Your task\"")
		return nil
	}

	groups := engine.GroupByTier(ranked)
	rank := 0
	for _, tier := range engine.TierOrder {
		tasks := groups[tier]
		if len(tasks) == 0 {
			continue
		}
		fmt.Printf("\n%s (%d)\n", tier.Label(), len(tasks))
		fmt.Println(strings.Repeat("─", 64))
		for _, t := range tasks {
			rank++
			fmt.Printf("  %2d. %-8s %-36s %3d  %s\n", rank, shortID(t.ID), truncateName(t.Name, 36), t.Score, t.Reason)
		}
	}
	fmt.Println()
	hintReview(app.Store)
	return nil
}

func printCompleted(app *App) {
	completed := app.Store.Completed()
	if len(completed) == 0 {
		fmt.Println("No completed tasks.")
		return
	}
	fmt.Printf("\nCompleted (%d)\n", len(completed))
	fmt.Println(strings.Repeat("─", 64))
	for _, t := range completed {
		fmt.Printf("  [x] %-8s %-36s done %s\n", shortID(t.ID), truncateName(t.Name, 36), t.CompletedAt.Format("Jan 2 15:04"))
	}
	fmt.Println()
}

func printArchived(app *App) {
	archived := app.Store.Archived()
	if len(archived) == 0 {
		fmt.Println("Archive is empty.")
		return
	}
	fmt.Printf("\nArchive (%d)\n", len(archived))
	fmt.Println(strings.Repeat("─", 64))
	for _, t := range archived {
		fmt.Printf("  [a] %-8s %-36s archived %s\n", shortID(t.ID), truncateName(t.Name, 36), t.ArchivedAt.Format("Jan 2"))
	}
	fmt.Println()
}

func truncateName(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
