package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/findlab/everfind/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the index for file changes",
	Long: `Polls the index on the transport's interval and prints every added,
modified and deleted entry until interrupted. Change detection runs
against index snapshots, so granularity is one poll period.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if engineService == nil {
		return errors.New("engine not configured")
	}

	stop := engineService.MonitorFileChanges(func(changes []domain.ChangeRecord) {
		for _, change := range changes {
			cmd.Printf("%-8s %s\n", change.Type, change.Path)
		}
	})
	defer stop()

	cmd.Println("Watching for changes. Press Ctrl-C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh

	cmd.Println("Stopped.")
	return nil
}
