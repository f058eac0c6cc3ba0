//go:build !windows

package sdk

import (
	"context"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Provider is the native-call transport. On this platform the
// engine's shared library does not exist; every operation fails fast
// with domain.ErrPlatformUnsupported.
type Provider struct {
	cfg Config
}

// New creates a native transport provider.
func New(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Type returns the transport identifier.
func (p *Provider) Type() string {
	return transportType
}

// Capabilities returns the transport's feature coverage.
func (p *Provider) Capabilities() driven.ProviderCapabilities {
	return capabilities(p.cfg.PollInterval)
}

// Connect fails fast: the shared library is unavailable here.
func (p *Provider) Connect(_ context.Context) error {
	return &domain.ConnectionError{Transport: transportType, Cause: domain.ErrPlatformUnsupported}
}

// Disconnect never fails.
func (p *Provider) Disconnect() error {
	return nil
}

// IsConnected is always false on this platform.
func (p *Provider) IsConnected() bool {
	return false
}

// Search fails fast with the platform error kind.
func (p *Provider) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, domain.ErrPlatformUnsupported
}

// Version fails fast with the platform error kind.
func (p *Provider) Version(_ context.Context) (string, error) {
	return "", domain.ErrPlatformUnsupported
}

// RebuildIndex fails fast with the platform error kind.
func (p *Provider) RebuildIndex(_ context.Context) error {
	return domain.ErrPlatformUnsupported
}

// SearchStatus fails fast with the platform error kind.
func (p *Provider) SearchStatus(_ context.Context) (domain.SearchStatus, error) {
	return domain.SearchStatus{}, domain.ErrPlatformUnsupported
}
