// Package cliexec implements the engine provider over the engine's
// spawned command-line client (es.exe).
//
// The CLI prints one full path per stdout line and nothing else, so
// sizes, timestamps and attribute bits normalise to zero values;
// directories are recognised by a trailing separator. A non-empty
// stderr or a non-zero exit code is a failure signal.
package cliexec

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
)

const transportType = "cli"

// DefaultExecutable is resolved on PATH when no path is configured.
const DefaultExecutable = "es"

// defaultPollInterval reflects the cost of spawning a process per
// monitoring tick: the slowest of the three transports.
const defaultPollInterval = 10 * time.Second

// Config holds the CLI transport settings.
type Config struct {
	// Executable is the command-line client path or name. Empty
	// means DefaultExecutable.
	Executable string

	// PollInterval overrides the transport's monitoring tick period.
	PollInterval time.Duration
}

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Provider runs the command-line client and parses its line output.
type Provider struct {
	cfg    Config
	runner runner

	mu        sync.Mutex
	connected bool
}

// New creates a CLI transport provider. The provider starts
// unconnected; Connect (or the first operation) probes the
// executable.
func New(cfg Config) *Provider {
	if cfg.Executable == "" {
		cfg.Executable = DefaultExecutable
	}
	return &Provider{
		cfg:    cfg,
		runner: execRunner{},
	}
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
		SupportsSort:    true,
		SupportsRebuild: true,
		PollInterval:    interval,
	}
}

// Connect verifies the executable is callable by asking the engine
// for its version. Calling while connected is a no-op success.
func (p *Provider) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked(ctx)
}

func (p *Provider) connectLocked(ctx context.Context) error {
	if p.connected {
		return nil
	}
	if _, _, err := p.runner.run(ctx, p.cfg.Executable, []string{flagVersion}); err != nil {
		return &domain.ConnectionError{Transport: transportType, Cause: err}
	}
	p.connected = true
	return nil
}

// Disconnect returns the provider to the unconnected state. The
// transport is stateless between invocations, so there is nothing to
// release; it never fails.
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

// Search executes the query through the command-line client,
// connecting implicitly if needed.
func (p *Provider) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if err := p.Connect(ctx); err != nil {
		return nil, err
	}

	stdout, stderr, err := p.run(ctx, buildArgs(query, opts))
	if err != nil {
		return nil, &domain.SearchError{Transport: transportType, Cause: runError(err, stderr)}
	}
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return nil, &domain.SearchError{Transport: transportType, Cause: errors.New(msg)}
	}
	return parseLines(stdout), nil
}

// Version asks the engine for its version string.
func (p *Provider) Version(ctx context.Context) (string, error) {
	if err := p.Connect(ctx); err != nil {
		return "", err
	}
	stdout, stderr, err := p.run(ctx, []string{flagVersion})
	if err != nil {
		return "", fmt.Errorf("cli: get version: %w", runError(err, stderr))
	}
	return strings.TrimSpace(string(stdout)), nil
}

// RebuildIndex asks the engine to rebuild. The client acknowledges
// and exits before rebuilding completes; the exit code is the
// acknowledgement.
func (p *Provider) RebuildIndex(ctx context.Context) error {
	if err := p.Connect(ctx); err != nil {
		return err
	}
	if _, stderr, err := p.run(ctx, []string{flagReindex}); err != nil {
		return fmt.Errorf("cli: rebuild index: %w", runError(err, stderr))
	}
	return nil
}

// SearchStatus counts indexed entries with a wildcard query. The CLI
// cannot observe indexing progress; a successful answer means the
// index is serving queries.
func (p *Provider) SearchStatus(ctx context.Context) (domain.SearchStatus, error) {
	if err := p.Connect(ctx); err != nil {
		return domain.SearchStatus{}, err
	}
	stdout, stderr, err := p.run(ctx, []string{flagResultCount, "*"})
	if err != nil {
		return domain.SearchStatus{}, fmt.Errorf("cli: get result count: %w", runError(err, stderr))
	}
	raw := strings.TrimSpace(string(stdout))
	total, err := strconv.Atoi(raw)
	if err != nil {
		return domain.SearchStatus{}, fmt.Errorf("cli: parse result count %q: %w", raw, err)
	}
	return domain.SearchStatus{
		TotalResults:     total,
		IndexingComplete: true,
		PercentComplete:  100,
	}, nil
}

func (p *Provider) run(ctx context.Context, args []string) ([]byte, []byte, error) {
	return p.runner.run(ctx, p.cfg.Executable, args)
}

// runError folds captured stderr into the process error so callers
// see the engine's diagnostic, not just the exit code.
func runError(err error, stderr []byte) error {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}
