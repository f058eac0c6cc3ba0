package driven

import (
	"context"
	"time"

	"github.com/findlab/everfind/internal/core/domain"
)

// Provider is the capability contract every engine transport
// implements. Semantics are transport-independent and must hold for
// all implementations.
//
// Each provider owns a private connected flag and, for
// connection-oriented transports, a handle to the live resource.
// Instances are created unconnected; any operation invoked while
// unconnected implicitly attempts to connect first.
type Provider interface {
	// Type returns the transport identifier ("cli", "sdk", "http").
	Type() string

	// Capabilities returns what this transport supports.
	Capabilities() ProviderCapabilities

	// Connect establishes whatever Search needs: verify a callable
	// process, load the native library, or probe the HTTP endpoint.
	// Idempotent: connecting while connected is a no-op success.
	// On failure the state stays unconnected and the returned error
	// wraps a *domain.ConnectionError carrying the transport's
	// diagnostic text.
	Connect(ctx context.Context) error

	// Disconnect releases the held resource and returns the provider
	// to the unconnected state. It never fails and is safe to call
	// when already disconnected.
	Disconnect() error

	// IsConnected is a pure state read with no side effects.
	IsConnected() bool

	// Search builds a transport-native query from query and opts,
	// executes it and parses the response into canonical results,
	// preserving the transport's order. It either returns the full
	// parsed set or an error wrapping a *domain.SearchError; partial
	// results are never returned as success.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Version returns the engine's reported version string.
	// Transports lacking version metadata return a documented
	// sentinel rather than failing.
	Version(ctx context.Context) (string, error)

	// RebuildIndex fires the transport's rebuild action. It returns
	// once the request is acknowledged, not once rebuilding
	// completes.
	RebuildIndex(ctx context.Context) error

	// SearchStatus reports best-effort index state. Transports that
	// cannot observe live progress report sentinel percentages
	// instead of failing.
	SearchStatus(ctx context.Context) (domain.SearchStatus, error)
}

// ProviderCapabilities describes what a transport supports.
// Feature coverage varies; options outside a transport's coverage are
// silently ignored rather than rejected.
type ProviderCapabilities struct {
	// === Result Fidelity ===

	// ReportsSize indicates Size carries real byte counts.
	ReportsSize bool

	// ReportsDates indicates the three timestamps carry real values.
	ReportsDates bool

	// ReportsAttributes indicates the raw attribute bitmask is
	// available and authoritative.
	ReportsAttributes bool

	// === Query Coverage ===

	// SupportsMatchPath indicates the MatchPath option affects
	// results on this transport.
	SupportsMatchPath bool

	// SupportsSort indicates engine-side sorting is available.
	SupportsSort bool

	// === Operations ===

	// SupportsRebuild indicates RebuildIndex reaches the engine.
	SupportsRebuild bool

	// === Monitoring ===

	// PollInterval is the monitoring tick period for this transport.
	// Cheaper transports poll faster; the value reflects real
	// latency and cost differences.
	PollInterval time.Duration
}
