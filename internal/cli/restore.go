package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [task-id]",
	Short: "Restore an archived task",
	Long: `Move a task from the archive back to the completed list.

Examples:
  tempo restore abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	task, err := app.Store.FindArchived(args[0])
	if err != nil {
		return fmt.Errorf("archived task not found: %s", args[0])
	}
	if _, err := app.Store.Restore(task.ID); err != nil {
		return fmt.Errorf("failed to restore task: %w", err)
	}
	fmt.Printf("↩ Restored: \"%s\"\n", task.Name)
	return nil
}
