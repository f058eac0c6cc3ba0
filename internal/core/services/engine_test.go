package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockProvider implements driven.Provider for testing.
type mockProvider struct {
	mu sync.Mutex

	connected  bool
	connectErr error

	// snapshots are returned by Search in order; the last one
	// repeats once exhausted.
	snapshots   [][]domain.SearchResult
	searchErr   error
	errOnCall   int // 1-based Search call that fails, 0 for never
	searchCalls int
	lastQuery   string
	lastOpts    domain.SearchOptions

	version      string
	versionErr   error
	rebuildCalls int
	rebuildErr   error
	status       domain.SearchStatus
	statusErr    error

	caps driven.ProviderCapabilities
}

func (m *mockProvider) Type() string { return "mock" }

func (m *mockProvider) Capabilities() driven.ProviderCapabilities { return m.caps }

func (m *mockProvider) Connect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connectErr != nil {
		return m.connectErr
	}
	m.connected = true
	return nil
}

func (m *mockProvider) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *mockProvider) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *mockProvider) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	m.lastQuery = query
	m.lastOpts = opts
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if m.errOnCall > 0 && m.searchCalls == m.errOnCall {
		return nil, &domain.SearchError{Transport: "mock", Cause: errors.New("transient failure")}
	}
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	idx := m.searchCalls - 1
	if idx >= len(m.snapshots) {
		idx = len(m.snapshots) - 1
	}
	return m.snapshots[idx], nil
}

func (m *mockProvider) Version(_ context.Context) (string, error) {
	return m.version, m.versionErr
}

func (m *mockProvider) RebuildIndex(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rebuildCalls++
	return m.rebuildErr
}

func (m *mockProvider) SearchStatus(_ context.Context) (domain.SearchStatus, error) {
	return m.status, m.statusErr
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchCalls
}

// --- Tests ---

func TestEngine_DelegatesSearch(t *testing.T) {
	want := []domain.SearchResult{{Path: `C:\docs`, Name: "a.txt"}}
	provider := &mockProvider{snapshots: [][]domain.SearchResult{want}}
	eng := NewEngine(provider)

	opts := domain.SearchOptions{Regex: true, MaxResults: 5}
	got, err := eng.Search(context.Background(), "*.txt", opts)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "*.txt", provider.lastQuery)
	assert.Equal(t, opts, provider.lastOpts)
}

func TestEngine_DelegatesLifecycle(t *testing.T) {
	provider := &mockProvider{}
	eng := NewEngine(provider)

	require.NoError(t, eng.Connect(context.Background()))
	assert.True(t, eng.IsConnected())

	require.NoError(t, eng.Disconnect())
	assert.False(t, eng.IsConnected())
}

func TestEngine_DisconnectIsIdempotent(t *testing.T) {
	provider := &mockProvider{}
	eng := NewEngine(provider)

	require.NoError(t, eng.Connect(context.Background()))
	require.NoError(t, eng.Disconnect())
	// Second disconnect is a no-op, never an error.
	require.NoError(t, eng.Disconnect())
	assert.False(t, eng.IsConnected())
}

func TestEngine_DelegatesVersion(t *testing.T) {
	provider := &mockProvider{version: "1.4.1.1024"}
	eng := NewEngine(provider)

	got, err := eng.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.1.1024", got)
}

func TestEngine_DelegatesRebuildIndex(t *testing.T) {
	provider := &mockProvider{}
	eng := NewEngine(provider)

	require.NoError(t, eng.RebuildIndex(context.Background()))
	assert.Equal(t, 1, provider.rebuildCalls)
}

func TestEngine_DelegatesSearchStatus(t *testing.T) {
	provider := &mockProvider{status: domain.SearchStatus{
		TotalResults:     42,
		IndexingComplete: true,
		PercentComplete:  100,
	}}
	eng := NewEngine(provider)

	got, err := eng.SearchStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got.TotalResults)
	assert.True(t, got.IndexingComplete)
}

func TestEngine_PropagatesErrors(t *testing.T) {
	searchErr := &domain.SearchError{Transport: "mock", Cause: errors.New("boom")}
	provider := &mockProvider{searchErr: searchErr}
	eng := NewEngine(provider)

	_, err := eng.Search(context.Background(), "q", domain.SearchOptions{})
	assert.ErrorIs(t, err, searchErr)
}

func TestEngine_CloseStopsMonitorsAndDisconnects(t *testing.T) {
	provider := &mockProvider{connected: true}
	eng := NewEngine(provider)

	eng.MonitorFileChangesInterval(func([]domain.ChangeRecord) {}, 10*time.Millisecond)
	require.NoError(t, eng.Close())

	calls := provider.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, provider.calls(), "no ticks after Close")
	assert.False(t, provider.IsConnected())
}
