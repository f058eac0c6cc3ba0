package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
	"github.com/findlab/everfind/internal/core/ports/driving"
	"github.com/findlab/everfind/internal/logger"
)

// defaultPollInterval applies when a provider declares none.
const defaultPollInterval = 5 * time.Second

// monitorQuery is the recurring search every subscription runs.
const monitorQuery = "*"

// monitor is one monitoring subscription: a repeating timer-driven
// task owning its own baseline snapshot. The baseline is touched only
// by the monitor's own goroutine, so no locking is needed around it.
type monitor struct {
	id       string
	provider driven.Provider
	callback driving.ChangeCallback
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	previous []domain.SearchResult
	seeded   bool
}

func newMonitor(provider driven.Provider, callback driving.ChangeCallback, interval time.Duration) *monitor {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &monitor{
		id:       uuid.NewString(),
		provider: provider,
		callback: callback,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (m *monitor) start() {
	go m.run()
}

// stop cancels the subscription and waits for the loop to exit, so a
// tick in flight completes but no further tick begins.
func (m *monitor) stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
	<-m.done
}

func (m *monitor) run() {
	defer close(m.done)

	logger.Debug("monitor %s: started on %s transport, interval %s",
		m.id, m.provider.Type(), m.interval)

	// Seed the baseline immediately rather than waiting one full
	// interval for the first snapshot.
	m.tick(context.Background())

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			logger.Debug("monitor %s: stopped", m.id)
			return
		case <-ticker.C:
		}

		// The cancellation flag is honoured before a tick begins,
		// never mid-tick.
		select {
		case <-m.stopCh:
			logger.Debug("monitor %s: stopped", m.id)
			return
		default:
		}

		m.tick(context.Background())
	}
}

// tick runs one full search-and-diff cycle to completion. Cycles for
// one subscription never overlap, so a slow transport effectively
// lengthens the real polling interval. Errors are logged and
// swallowed: one failed poll must not terminate a long-lived
// subscription.
func (m *monitor) tick(ctx context.Context) {
	current, err := m.provider.Search(ctx, monitorQuery, monitorSearchOptions())
	if err != nil {
		logger.Warn("monitor %s: poll failed: %v", m.id, err)
		return
	}

	if !m.seeded {
		// First snapshot seeds the baseline; no diff, no callback.
		m.previous = current
		m.seeded = true
		logger.Debug("monitor %s: baseline seeded with %d entries", m.id, len(current))
		return
	}

	changes := domain.DetectChanges(m.previous, current)
	m.previous = current

	if len(changes) == 0 {
		return
	}
	logger.Debug("monitor %s: %d changes detected", m.id, len(changes))
	m.callback(changes)
}

// monitorSearchOptions returns the widest window the transports can
// serve: everything included, no result cap, transport-default order.
func monitorSearchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		IncludeHidden:  true,
		IncludeSystem:  true,
		IncludeFolders: true,
		IncludeFiles:   true,
	}
}
