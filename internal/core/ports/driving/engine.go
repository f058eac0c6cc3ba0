package driving

import (
	"context"

	"github.com/findlab/everfind/internal/core/domain"
)

// ChangeCallback receives the non-empty change list produced by one
// monitoring tick.
type ChangeCallback func(changes []domain.ChangeRecord)

// EngineService is the single stable interface callers use regardless
// of which transport answers underneath. Beyond monitoring, every
// operation is forwarded verbatim to the active transport.
type EngineService interface {
	// Connect establishes the active transport.
	Connect(ctx context.Context) error

	// Disconnect releases the active transport's resources.
	Disconnect() error

	// IsConnected reports the active transport's connection state.
	IsConnected() bool

	// Search executes a query through the active transport.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Version returns the engine's reported version string.
	Version(ctx context.Context) (string, error)

	// RebuildIndex signals the engine to rebuild its index.
	RebuildIndex(ctx context.Context) error

	// SearchStatus reports best-effort index state.
	SearchStatus(ctx context.Context) (domain.SearchStatus, error)

	// MonitorFileChanges starts a recurring wildcard search that
	// diffs successive snapshots and invokes callback with non-empty
	// change lists. The returned function stops the subscription;
	// after it returns no further callbacks occur, except that a
	// tick already in flight may complete.
	MonitorFileChanges(callback ChangeCallback) (stop func())

	// Close stops all live monitor subscriptions and disconnects.
	Close() error
}
