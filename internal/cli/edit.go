package cli

import (
	"fmt"

	"github.com/existflow/tempo/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task",
	Long: `Change a task's name, impact, effort or deadline. Only the flags
you pass are changed.

Examples:
  tempo edit abc123 --name "New name"
  tempo edit abc123 -d today`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editName     string
	editImpact   string
	editEffort   string
	editDeadline string
)

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New task name")
	editCmd.Flags().StringVarP(&editImpact, "impact", "i", "", "Impact (high, low)")
	editCmd.Flags().StringVarP(&editEffort, "effort", "e", "", "Effort (low, high)")
	editCmd.Flags().StringVarP(&editDeadline, "deadline", "d", "", "Deadline (today, this_week, this_sprint, after_sprint)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	task, err := app.Store.Find(args[0])
	if err != nil {
		return fmt.Errorf("task not found: %s", args[0])
	}

	name := task.Name
	impact := task.Impact
	effort := task.Effort
	deadline := task.Deadline

	if cmd.Flags().Changed("name") {
		name = editName
	}
	if cmd.Flags().Changed("impact") {
		if impact, err = model.ParseImpact(editImpact); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("effort") {
		if effort, err = model.ParseEffort(editEffort); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("deadline") {
		if deadline, err = model.ParseDeadline(editDeadline); err != nil {
			return err
		}
	}

	updated, err := app.Store.Update(task.ID, name, impact, effort, deadline)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("✎ Updated: \"%s\"\n", updated.Name)
	return nil
}
