package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move all completed tasks to the archive",
	Long: `Clear the completed list by moving every completed task into the
archive, where it can still be restored or permanently deleted.

Examples:
  tempo archive`,
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer app.Close()
	startup(app.Store)

	moved := app.Store.ArchiveCompleted(time.Now())
	if moved == 0 {
		fmt.Println("No completed tasks to archive.")
		return nil
	}
	fmt.Printf("📦 Archived %d completed tasks.\n", moved)
	return nil
}
