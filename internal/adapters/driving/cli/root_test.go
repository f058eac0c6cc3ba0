package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driving"
)

// mockEngine answers every operation with canned values so commands
// can run without a real transport.
type mockEngine struct {
	results   []domain.SearchResult
	status    domain.SearchStatus
	version   string
	searchErr error

	lastQuery string
	lastOpts  domain.SearchOptions
	rebuilt   bool
}

var _ driving.EngineService = (*mockEngine)(nil)

func (m *mockEngine) Connect(context.Context) error { return nil }
func (m *mockEngine) Disconnect() error             { return nil }
func (m *mockEngine) IsConnected() bool             { return true }

func (m *mockEngine) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.searchErr
}

func (m *mockEngine) Version(context.Context) (string, error) {
	return m.version, nil
}

func (m *mockEngine) RebuildIndex(context.Context) error {
	m.rebuilt = true
	return nil
}

func (m *mockEngine) SearchStatus(context.Context) (domain.SearchStatus, error) {
	return m.status, nil
}

func (m *mockEngine) MonitorFileChanges(driving.ChangeCallback) (stop func()) {
	return func() {}
}

func (m *mockEngine) Close() error { return nil }

// setupTestEngine installs a mock engine and returns it alongside a
// cleanup that restores the previous wiring.
func setupTestEngine() (*mockEngine, func()) {
	mock := &mockEngine{
		results: []domain.SearchResult{
			{Name: "report.pdf", Path: `C:\Docs`, Size: 1024, DateModified: 1700000000000},
			{Name: "Projects", Path: `C:\`, IsDirectory: true},
		},
		status:  domain.SearchStatus{TotalResults: 42, IndexingComplete: true, PercentComplete: 100},
		version: "1.4.1.1024",
	}

	oldService := engineService
	oldOwns := ownsEngine
	engineService = mock
	ownsEngine = false

	return mock, func() {
		engineService = oldService
		ownsEngine = oldOwns
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "everfind", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("transport"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestSetupEngine_SkipsWhenServiceInjected(t *testing.T) {
	_, cleanup := setupTestEngine()
	defer cleanup()

	err := setupEngine(rootCmd, nil)

	assert.NoError(t, err)
	assert.False(t, ownsEngine)
}

var errMockSearch = errors.New("transport exploded")
