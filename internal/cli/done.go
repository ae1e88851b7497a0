package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Long: `Mark a task as completed. Completed tasks keep the score and tier
they had at the moment of completion.

Examples:
  tempo done abc123
  tempo done abc123 --undo`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUndo bool

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Move a completed task back to the active list")
}

func runDone(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	if doneUndo {
		done, err := app.Store.FindCompleted(args[0])
		if err != nil {
			return fmt.Errorf("completed task not found: %s", args[0])
		}
		if _, err := app.Store.Uncomplete(done.ID); err != nil {
			return fmt.Errorf("failed to reopen task: %w", err)
		}
		fmt.Printf("○ Reopened: \"%s\"\n", done.Name)
		return nil
	}

	task, err := app.Store.Find(args[0])
	if err != nil {
		return fmt.Errorf("task not found: %s", args[0])
	}
	if _, err := app.Store.Complete(task.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	fmt.Printf("✓ Completed: \"%s\"\n", task.Name)
	return nil
}
