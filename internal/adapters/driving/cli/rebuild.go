package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the engine index",
	Long: `Signals the engine to rebuild its index from scratch. The rebuild runs
inside the engine; this command returns as soon as the request is
accepted. Not every transport supports it.`,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, _ []string) error {
	if engineService == nil {
		return errors.New("engine not configured")
	}

	if err := engineService.RebuildIndex(context.Background()); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	cmd.Println("Index rebuild requested.")
	return nil
}
