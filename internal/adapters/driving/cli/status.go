package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index status",
	Long: `Reports the engine's index state: total indexed entries and whether
indexing is complete. Status is best effort; transports that cannot
observe live progress report sentinel percentages.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if engineService == nil {
		return errors.New("engine not configured")
	}

	status, err := engineService.SearchStatus(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	cmd.Printf("Indexed entries:   %d\n", status.TotalResults)
	if status.IndexingComplete {
		cmd.Println("Indexing:          complete")
	} else {
		cmd.Println("Indexing:          in progress")
	}
	cmd.Printf("Percent complete:  %d%%\n", status.PercentComplete)
	return nil
}
