// Package engine provides the factory that selects and constructs the
// transport adapter serving the provider contract.
package engine

import (
	"fmt"
	"runtime"

	"github.com/findlab/everfind/internal/adapters/driven/engine/cliexec"
	"github.com/findlab/everfind/internal/adapters/driven/engine/httpapi"
	"github.com/findlab/everfind/internal/adapters/driven/engine/sdk"
	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
	"github.com/findlab/everfind/internal/logger"
)

// Transport names accepted in configuration.
const (
	TransportAuto = "auto"
	TransportCLI  = "cli"
	TransportSDK  = "sdk"
	TransportHTTP = "http"
)

// Config selects and parameterises a transport. It is an explicit
// value passed in by the caller; there are no process-wide defaults.
type Config struct {
	// Transport names the adapter to construct, or TransportAuto
	// (and the empty string) for environment-based selection.
	Transport string

	CLI  cliexec.Config
	SDK  sdk.Config
	HTTP httpapi.Config
}

// New constructs the adapter named by cfg.Transport.
func New(cfg Config) (driven.Provider, error) {
	transport := cfg.Transport
	if transport == "" || transport == TransportAuto {
		transport = autoSelect(runtime.GOOS, cfg)
		logger.Debug("transport auto-selected: %s", transport)
	}

	switch transport {
	case TransportCLI:
		return cliexec.New(cfg.CLI), nil
	case TransportSDK:
		return sdk.New(cfg.SDK), nil
	case TransportHTTP:
		if cfg.HTTP.BaseURL == "" {
			return nil, fmt.Errorf("%w: http transport requires a base URL", domain.ErrInvalidInput)
		}
		return httpapi.New(cfg.HTTP), nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", domain.ErrInvalidInput, cfg.Transport)
	}
}

// autoSelect probes the environment: the native library on Windows,
// the HTTP API when a base URL is configured, the command-line client
// otherwise.
func autoSelect(goos string, cfg Config) string {
	if goos == "windows" {
		return TransportSDK
	}
	if cfg.HTTP.BaseURL != "" {
		return TransportHTTP
	}
	return TransportCLI
}
