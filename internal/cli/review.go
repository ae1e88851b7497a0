package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/existflow/tempo/internal/model"
	"github.com/existflow/tempo/internal/review"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Triage tasks carried over from a previous day",
	Long: `Walk through every task left over from the last day you used Tempo
and decide what to do with each: complete it, keep it, reschedule it, or
dismiss it. A task resolved once is never asked about again for the same
day, even if the review is interrupted and resumed.`,
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	app.Store.MarkVisited()

	session := review.Start(app.Store, time.Now())
	if session == nil {
		fmt.Println("Nothing to review. You're all caught up.")
		return nil
	}

	pending := session.Pending()
	fmt.Printf("\n🌅 Daily review — %d task(s) carried over\n\n", len(pending))

	reader := bufio.NewReader(os.Stdin)
	for !session.Done() {
		task := session.Pending()[0]
		fmt.Printf("  \"%s\"\n", task.Name)
		fmt.Printf("  %s · score %d · %s\n", task.Reason, task.Score, task.Tier.Label())
		fmt.Print("  [c]omplete  [k]eep  [r]eschedule  [d]ismiss  [D]ismiss all  [q]uit: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			// Input closed mid-session; already-resolved tasks stay resolved.
			fmt.Println("\nReview paused. Run 'tempo review' to finish.")
			return nil
		}

		switch strings.TrimSpace(line) {
		case "c":
			if err := session.Complete(task.ID, time.Now()); err != nil {
				return err
			}
			fmt.Printf("  ✓ Completed\n\n")
		case "k":
			if err := session.Keep(task.ID); err != nil {
				return err
			}
			fmt.Printf("  → Kept\n\n")
		case "r":
			deadline, ok := promptDeadline(reader)
			if !ok {
				continue
			}
			if err := session.Reschedule(task.ID, deadline); err != nil {
				return err
			}
			fmt.Printf("  ↻ Rescheduled to %s\n\n", deadline.Label())
		case "d":
			if err := session.Dismiss(task.ID); err != nil {
				return err
			}
			fmt.Printf("  ✗ Dismissed\n\n")
		case "D":
			if !confirm(fmt.Sprintf("Dismiss all %d remaining tasks?", len(session.Pending()))) {
				continue
			}
			session.DismissAll()
			fmt.Println("  ✗ All remaining tasks dismissed")
		case "q":
			fmt.Println("Review paused. Run 'tempo review' to finish.")
			return nil
		default:
			fmt.Println("  Please answer c, k, r, d, D or q.")
		}
	}

	fmt.Println("🎉 Review finished. Have a good day.")
	return nil
}

func promptDeadline(reader *bufio.Reader) (model.Deadline, bool) {
	fmt.Print("  New deadline [t]oday  [w]this week  [s]this sprint  [a]fter sprint: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	switch strings.TrimSpace(line) {
	case "t":
		return model.DeadlineToday, true
	case "w":
		return model.DeadlineThisWeek, true
	case "s":
		return model.DeadlineThisSprint, true
	case "a":
		return model.DeadlineAfterSprint, true
	default:
		fmt.Println("  Unknown deadline, task left pending.")
		return "", false
	}
}
