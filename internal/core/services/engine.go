package services

import (
	"context"
	"sync"
	"time"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
	"github.com/findlab/everfind/internal/core/ports/driving"
)

// Ensure Engine implements the driving port.
var _ driving.EngineService = (*Engine)(nil)

// Engine is the client facade. It holds exactly one active transport
// provider and forwards every operation to it unchanged; it has no
// behaviour of its own beyond delegation and monitor bookkeeping.
type Engine struct {
	provider driven.Provider

	mu       sync.Mutex
	monitors map[string]*monitor
}

// NewEngine creates a facade over the given provider. The provider is
// chosen by explicit configuration (or the transport factory's
// environment probe) before construction; the facade never swaps it.
func NewEngine(provider driven.Provider) *Engine {
	return &Engine{
		provider: provider,
		monitors: make(map[string]*monitor),
	}
}

// Provider returns the active transport adapter.
func (e *Engine) Provider() driven.Provider {
	return e.provider
}

// Connect forwards to the active provider.
func (e *Engine) Connect(ctx context.Context) error {
	return e.provider.Connect(ctx)
}

// Disconnect forwards to the active provider.
func (e *Engine) Disconnect() error {
	return e.provider.Disconnect()
}

// IsConnected forwards to the active provider.
func (e *Engine) IsConnected() bool {
	return e.provider.IsConnected()
}

// Search forwards to the active provider.
func (e *Engine) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	return e.provider.Search(ctx, query, opts)
}

// Version forwards to the active provider.
func (e *Engine) Version(ctx context.Context) (string, error) {
	return e.provider.Version(ctx)
}

// RebuildIndex forwards to the active provider.
func (e *Engine) RebuildIndex(ctx context.Context) error {
	return e.provider.RebuildIndex(ctx)
}

// SearchStatus forwards to the active provider.
func (e *Engine) SearchStatus(ctx context.Context) (domain.SearchStatus, error) {
	return e.provider.SearchStatus(ctx)
}

// MonitorFileChanges starts a recurring wildcard search on the
// provider's declared poll interval, diffing each snapshot against
// the previous one and invoking callback with the non-empty change
// list. Each call creates an independent subscription with its own
// baseline; subscriptions never share snapshot state.
//
// The returned stop function cancels the subscription. After it
// returns, no further callbacks occur; a tick already in flight is
// allowed to complete first. Calling stop more than once is a no-op.
func (e *Engine) MonitorFileChanges(callback driving.ChangeCallback) (stop func()) {
	return e.MonitorFileChangesInterval(callback, e.provider.Capabilities().PollInterval)
}

// MonitorFileChangesInterval is MonitorFileChanges with an explicit
// tick period, overriding the transport's declared interval.
func (e *Engine) MonitorFileChangesInterval(callback driving.ChangeCallback, interval time.Duration) (stop func()) {
	m := newMonitor(e.provider, callback, interval)

	e.mu.Lock()
	e.monitors[m.id] = m
	e.mu.Unlock()

	m.start()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.stop()
			e.mu.Lock()
			delete(e.monitors, m.id)
			e.mu.Unlock()
		})
	}
}

// Close stops all live monitor subscriptions and disconnects the
// provider.
func (e *Engine) Close() error {
	e.mu.Lock()
	live := make([]*monitor, 0, len(e.monitors))
	for _, m := range e.monitors {
		live = append(live, m)
	}
	e.monitors = make(map[string]*monitor)
	e.mu.Unlock()

	for _, m := range live {
		m.stop()
	}
	return e.provider.Disconnect()
}
