// Package cli exposes the everfind command tree. Commands talk to the
// engine exclusively through the driving port; transport selection and
// wiring happen once, in the persistent pre-run hook.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findlab/everfind/internal/adapters/driven/config/file"
	"github.com/findlab/everfind/internal/adapters/driven/engine"
	"github.com/findlab/everfind/internal/adapters/driven/engine/cliexec"
	"github.com/findlab/everfind/internal/adapters/driven/engine/httpapi"
	"github.com/findlab/everfind/internal/adapters/driven/engine/sdk"
	"github.com/findlab/everfind/internal/core/ports/driving"
	"github.com/findlab/everfind/internal/core/services"
	"github.com/findlab/everfind/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	flagConfig    string
	flagTransport string
	flagVerbose   bool
)

// engineService is the facade every command runs against. Tests inject
// a mock here; production wiring fills it in setupEngine.
var engineService driving.EngineService

// ownsEngine marks a facade built by setupEngine, which Execute must
// close. Injected test services are left alone.
var ownsEngine bool

var rootCmd = &cobra.Command{
	Use:   "everfind",
	Short: "Unified client for the Everything search engine",
	Long: `everfind searches the Everything index through whichever transport is
available: the native library, a spawned command-line client, or the
HTTP server. Results come back in one canonical shape regardless of
the transport answering underneath.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupEngine,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.everfind/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagTransport, "transport", "t", "", "transport: auto, cli, sdk or http")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func setupEngine(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetVerbose(true)
	}
	if engineService != nil {
		return nil
	}

	cfg, err := file.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	transport := cfg.Transport
	if flagTransport != "" {
		transport = flagTransport
	}

	provider, err := engine.New(engineConfig(transport, cfg))
	if err != nil {
		return err
	}

	engineService = services.NewEngine(provider)
	ownsEngine = true
	return nil
}

// engineConfig maps the on-disk configuration onto the transport
// factory's explicit config value.
func engineConfig(transport string, cfg file.Config) engine.Config {
	return engine.Config{
		Transport: transport,
		CLI: cliexec.Config{
			Executable:   cfg.CLI.Executable,
			PollInterval: file.PollInterval(cfg.CLI.PollSeconds),
		},
		SDK: sdk.Config{
			LibraryPath:  cfg.SDK.Library,
			PollInterval: file.PollInterval(cfg.SDK.PollSeconds),
		},
		HTTP: httpapi.Config{
			BaseURL:           cfg.HTTP.BaseURL,
			Username:          cfg.HTTP.Username,
			Password:          cfg.HTTP.Password,
			Timeout:           file.PollInterval(cfg.HTTP.TimeoutSeconds),
			RequestsPerSecond: cfg.HTTP.RequestsPerSecond,
			PollInterval:      file.PollInterval(cfg.HTTP.PollSeconds),
		},
	}
}

// Execute runs the command tree and releases the engine it wired.
func Execute() error {
	err := rootCmd.Execute()

	if ownsEngine && engineService != nil {
		if closeErr := engineService.Close(); closeErr != nil {
			logger.Debug("engine close: %v", closeErr)
		}
		engineService = nil
		ownsEngine = false
	}
	return err
}
