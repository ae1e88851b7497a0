package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/tempo/internal/engine"
	"github.com/existflow/tempo/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task with impact, effort and deadline.

Examples:
  tempo add "Ship onboarding email" -i high -e low -d today
  tempo add "Refactor billing" --impact high --effort high --deadline this_sprint`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addImpact   string
	addEffort   string
	addDeadline string
)

func init() {
	addCmd.Flags().StringVarP(&addImpact, "impact", "i", "high", "Impact (high, low)")
	addCmd.Flags().StringVarP(&addEffort, "effort", "e", "low", "Effort (low, high)")
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "this_week", "Deadline (today, this_week, this_sprint, after_sprint)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	impact, err := model.ParseImpact(addImpact)
	if err != nil {
		return err
	}
	effort, err := model.ParseEffort(addEffort)
	if err != nil {
		return err
	}
	deadline, err := model.ParseDeadline(addDeadline)
	if err != nil {
		return err
	}

	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	name := strings.Join(args, " ")
	task, err := app.Store.Add(model.NewTask(name, impact, effort, deadline))
	if err != nil {
		return err
	}

	ranked := engine.Decorate(task)
	fmt.Printf("✓ Added: \"%s\" [%s]\n", task.Name, shortID(task.ID))
	fmt.Printf("  %s · score %d · %s\n", ranked.Reason, ranked.Score, ranked.Tier.Label())
	hintReview(app.Store)
	return nil
}
