// Package sdk implements the engine provider over the engine's native
// shared library, called in-process.
//
// The library only ships for Windows. Other platforms compile a stub
// whose operations fail fast with domain.ErrPlatformUnsupported, a
// distinct error kind callers can test for.
package sdk

import (
	"time"

	"github.com/findlab/everfind/internal/core/ports/driven"
)

const transportType = "sdk"

// DefaultLibrary is the library filename loaded when no explicit path
// is configured. Resolution follows the platform's library search
// order.
const DefaultLibrary = "Everything64.dll"

// defaultPollInterval is the shortest of the three transports: an
// in-process call has no spawn or network cost.
const defaultPollInterval = 2 * time.Second

// Config holds the native transport settings.
type Config struct {
	// LibraryPath overrides DefaultLibrary.
	LibraryPath string

	// PollInterval overrides the transport's monitoring tick period.
	PollInterval time.Duration
}

func (c Config) library() string {
	if c.LibraryPath != "" {
		return c.LibraryPath
	}
	return DefaultLibrary
}

// capabilities is shared by the real implementation and the stub so
// both report the same coverage.
func capabilities(pollInterval time.Duration) driven.ProviderCapabilities {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return driven.ProviderCapabilities{
		ReportsSize:       true,
		ReportsDates:      true,
		ReportsAttributes: true,
		SupportsMatchPath: true,
		SupportsSort:      true,
		SupportsRebuild:   true,
		PollInterval:      pollInterval,
	}
}
