package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete an active task, or permanently delete an archived one.

Examples:
  tempo delete abc123
  tempo delete --archived abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteArchived bool

func init() {
	deleteCmd.Flags().BoolVar(&deleteArchived, "archived", false, "Permanently delete from the archive")
}

func runDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	cfg := loadConfig()

	if deleteArchived {
		task, err := app.Store.FindArchived(args[0])
		if err != nil {
			return fmt.Errorf("archived task not found: %s", args[0])
		}
		if cfg.ConfirmDelete && !confirm(fmt.Sprintf("Permanently delete \"%s\"? This cannot be undone.", task.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := app.Store.PurgeArchived(task.ID); err != nil {
			return fmt.Errorf("failed to delete archived task: %w", err)
		}
		fmt.Printf("🗑  Permanently deleted: \"%s\"\n", task.Name)
		return nil
	}

	task, err := app.Store.Find(args[0])
	if err != nil {
		return fmt.Errorf("task not found: %s", args[0])
	}
	if cfg.ConfirmDelete && !confirm(fmt.Sprintf("About to delete: \"%s\" (ID: %s). Are you sure?", task.Name, shortID(task.ID))) {
		fmt.Println("Cancelled.")
		return nil
	}
	if err := app.Store.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	fmt.Printf("🗑  Deleted: \"%s\"\n", task.Name)
	return nil
}
