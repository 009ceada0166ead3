package i18n

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// readyTimeout bounds how long a card waits for the shared provider
// before its bootstrap fails hard. A card never renders untranslated
// rather than waiting forever.
const readyTimeout = 10 * time.Second

// Loader is the explicitly injected, reference-counted handle to the
// shared Provider. The first Acquire triggers the load; concurrent
// acquisitions collapse into that single load; later ones reuse the
// cached provider. When the last holder releases, the provider is
// dropped and the next Acquire loads fresh.
type Loader struct {
	source  Source
	timeout time.Duration
	group   singleflight.Group

	mu       sync.Mutex
	provider *Provider
	refs     int
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source, timeout: readyTimeout}
}

// Acquire returns the shared provider, loading it if this is the first
// holder. It fails after the bounded readiness timeout; the caller
// treats that as bootstrap-fatal.
func (l *Loader) Acquire(ctx context.Context) (*Provider, error) {
	l.mu.Lock()
	if l.provider != nil {
		l.refs++
		provider := l.provider
		l.mu.Unlock()
		return provider, nil
	}
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	ch := l.group.DoChan("load", func() (any, error) {
		return l.load(context.Background())
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("translation provider load: %w", res.Err)
		}
		provider := res.Val.(*Provider)
		l.mu.Lock()
		if l.provider == nil {
			l.provider = provider
		}
		l.refs++
		provider = l.provider
		l.mu.Unlock()
		return provider, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("translation provider not ready within %s: %w", l.timeout, ctx.Err())
	}
}

// Release drops one reference. Idle providers are discarded so a later
// bootstrap observes fresh server state.
func (l *Loader) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 {
		l.provider = nil
	}
}

func (l *Loader) load(ctx context.Context) (*Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	locale, err := l.source.ActiveLocale(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active locale: %w", err)
	}
	table, err := l.source.Translations(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("fetch translations for %s: %w", locale, err)
	}
	return newProvider(l.source, locale, table), nil
}
