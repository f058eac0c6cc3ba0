package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print client and engine version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Printf("everfind version %s\n", version)

		if engineService == nil {
			return errors.New("engine not configured")
		}
		engineVersion, err := engineService.Version(context.Background())
		if err != nil {
			cmd.Printf("engine version: unavailable (%v)\n", err)
			return nil
		}
		cmd.Printf("engine version: %s\n", engineVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
