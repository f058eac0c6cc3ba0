// Package httpapi implements the engine provider over the engine's
// built-in HTTP server.
//
// Requests are plain GETs with query-string-encoded parameters and
// optional Basic Authentication; the response is a JSON body with a
// results array plus total-count metadata. Numeric fields arrive as
// strings and may be empty, so normalisation is lenient: a missing or
// empty number becomes 0, never an error.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
)

const transportType = "http"

// VersionSentinel is returned by Version: the HTTP server exposes no
// version metadata, and the contract is to answer rather than fail.
const VersionSentinel = "unknown (http server)"

// DefaultTimeout bounds each round-trip when the config sets none.
const DefaultTimeout = 30 * time.Second

// defaultPollInterval sits between the in-process SDK and the spawned
// CLI: one network round-trip per monitoring tick.
const defaultPollInterval = 5 * time.Second

// Config holds the HTTP transport settings.
type Config struct {
	// BaseURL is the engine HTTP server root,
	// e.g. "http://localhost:8080".
	BaseURL string

	// Username and Password enable Basic Authentication when either
	// is non-empty.
	Username string
	Password string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// RequestsPerSecond enables a client-side rate limiter when
	// positive, so aggressive monitor intervals cannot flood a
	// remote engine. Zero disables limiting.
	RequestsPerSecond float64

	// PollInterval overrides the transport's monitoring tick period.
	PollInterval time.Duration
}

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Provider queries the engine's HTTP server.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter

	mu        sync.Mutex
	connected bool
}

// New creates an HTTP transport provider.
func New(cfg Config) *Provider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	p := &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.RequestsPerSecond > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return p
}

// Type returns the transport identifier.
func (p *Provider) Type() string {
	return transportType
}

// Capabilities returns the transport's feature coverage.
func (p *Provider) Capabilities() driven.ProviderCapabilities {
	interval := p.cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return driven.ProviderCapabilities{
		ReportsSize:       true,
		ReportsDates:      true,
		SupportsMatchPath: true,
		SupportsSort:      true,
		PollInterval:      interval,
	}
}

// Connect probes the endpoint with a zero-count query. Calling while
// connected is a no-op success.
func (p *Provider) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.connected {
		return nil
	}

	probe := url.Values{}
	probe.Set(paramSearch, "")
	probe.Set(paramJSON, "1")
	probe.Set(paramCount, "0")
	if _, err := p.get(ctx, probe); err != nil {
		return &domain.ConnectionError{Transport: transportType, Cause: err}
	}
	p.connected = true
	return nil
}

// Disconnect returns the provider to the unconnected state. The
// transport holds no live resource; it never fails.
func (p *Provider) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connected = false
	return nil
}

// IsConnected reports the connection state.
func (p *Provider) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

// Search executes the query against the HTTP server, connecting
// implicitly if needed.
func (p *Provider) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if err := p.Connect(ctx); err != nil {
		return nil, err
	}

	resp, err := p.get(ctx, buildQuery(query, opts))
	if err != nil {
		return nil, &domain.SearchError{Transport: transportType, Cause: err}
	}

	results := make([]domain.SearchResult, 0, len(resp.Results))
	for _, raw := range resp.Results {
		results = append(results, raw.normalize())
	}
	return results, nil
}

// Version returns the documented sentinel: the server reports no
// version metadata.
func (p *Provider) Version(_ context.Context) (string, error) {
	return VersionSentinel, nil
}

// RebuildIndex is not reachable over HTTP; the server exposes no
// rebuild endpoint. The failure is reported, never swallowed.
func (p *Provider) RebuildIndex(_ context.Context) error {
	return fmt.Errorf("http: rebuild index: %w", domain.ErrNotSupported)
}

// SearchStatus counts indexed entries with a wildcard query. The
// server does not expose indexing progress; an answering server
// reports complete.
func (p *Provider) SearchStatus(ctx context.Context) (domain.SearchStatus, error) {
	if err := p.Connect(ctx); err != nil {
		return domain.SearchStatus{}, err
	}

	params := url.Values{}
	params.Set(paramSearch, "*")
	params.Set(paramJSON, "1")
	params.Set(paramCount, "1")
	resp, err := p.get(ctx, params)
	if err != nil {
		return domain.SearchStatus{}, &domain.SearchError{Transport: transportType, Cause: err}
	}
	return domain.SearchStatus{
		TotalResults:     int(resp.TotalResults),
		IndexingComplete: true,
		PercentComplete:  100,
	}, nil
}
