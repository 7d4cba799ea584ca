// Package content owns the indexed navigation list shared by the web
// server, the terminal UI and the CLI.
package content

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/logging"
)

var contentLog = logging.ForComponent(logging.CompContent)

// Source produces the indexed navigation list. On failure it may still
// return a usable list; the provider ignores it and keeps its fallback.
type Source interface {
	Load(ctx context.Context) ([]docs.NavItem, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]docs.NavItem, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) ([]docs.NavItem, error) {
	return f(ctx)
}

// Provider serves the bare navigation list until the first load completes,
// then the indexed one. The load starts on first access and runs once.
type Provider struct {
	source Source

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	items    []docs.NavItem
	loading  bool
	err      error
	loadedAt time.Time
}

// New returns a provider for source. fallback is served while loading and
// kept if loading fails; nil means docs.DefaultNav().
func New(source Source, fallback []docs.NavItem) *Provider {
	if fallback == nil {
		fallback = docs.DefaultNav()
	}
	return &Provider{
		source:  source,
		done:    make(chan struct{}),
		items:   docs.StripContent(fallback),
		loading: true,
	}
}

// Start begins loading in the background. Calls after the first are no-ops.
func (p *Provider) Start() {
	p.once.Do(func() {
		go p.load()
	})
}

func (p *Provider) load() {
	defer close(p.done)

	start := time.Now()
	items, err := p.source.Load(context.Background())

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	p.loadedAt = time.Now()
	if err != nil {
		p.err = err
		contentLog.Warn("content_load_failed",
			slog.String("error", err.Error()),
			slog.Int("fallback_items", len(p.items)))
		return
	}
	p.items = docs.CloneNav(items)
	contentLog.Info("content_loaded",
		slog.Int("items", len(items)),
		slog.Int("indexed", docs.CountIndexed(items)),
		slog.Duration("took", time.Since(start)))
}

// NavItems starts the load if needed and returns the current list and
// whether the load is still in flight.
func (p *Provider) NavItems() ([]docs.NavItem, bool) {
	p.Start()
	p.mu.RLock()
	defer p.mu.RUnlock()
	return docs.CloneNav(p.items), p.loading
}

// Wait starts the load if needed and blocks until it completes or ctx is
// done. A failed load is not an error here: the fallback list is returned
// and Err reports the cause.
func (p *Provider) Wait(ctx context.Context) ([]docs.NavItem, error) {
	p.Start()
	select {
	case <-p.done:
		items, _ := p.NavItems()
		return items, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed once loading has finished. It does not start the load.
func (p *Provider) Done() <-chan struct{} {
	return p.done
}

// Err returns the load error, if any.
func (p *Provider) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Loading reports whether the load is still in flight.
func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Indexed returns how many items carry content.
func (p *Provider) Indexed() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return docs.CountIndexed(p.items)
}

// LoadedAt returns when loading finished, or the zero time.
func (p *Provider) LoadedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loadedAt
}
