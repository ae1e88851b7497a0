package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all active tasks",
	Long: `Remove every active task. Completed and archived tasks are kept.

Examples:
  tempo clear
  tempo clear --force`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	count := len(app.Store.Active())
	if count == 0 {
		fmt.Println("No active tasks to clear.")
		return nil
	}

	if !force && !confirm(fmt.Sprintf("Clear all %d active tasks? This cannot be undone.", count)) {
		fmt.Println("Aborted.")
		return nil
	}

	app.Store.ClearActive()
	fmt.Printf("🧹 Cleared %d tasks.\n", count)
	return nil
}
