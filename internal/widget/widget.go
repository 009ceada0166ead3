// Package widget implements the lifecycle every dashboard card shares:
// translation bootstrap against the shared provider, locale-change
// reaction, render signalling and teardown. Cards compose Base rather
// than inheriting from it; the host only sees the Card interface.
package widget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"noteboard/internal/bus"
	"noteboard/internal/i18n"
	"noteboard/internal/logging"
)

// localeSwitchTimeout bounds the provider's table fetch when a locale
// change arrives. Failure keeps the previous translations.
const localeSwitchTimeout = 4 * time.Second

// Options is the per-card configuration the host accepts.
type Options struct {
	MaxNotes       int
	ShowCategories bool
}

func DefaultOptions() Options {
	return Options{MaxNotes: 8, ShowCategories: true}
}

// Card is the capability a dashboard slot requires.
type Card interface {
	Name() string
	Render(width int) string
	Close()
}

// Base carries the shared lifecycle state. The notify callback is the
// render trigger; bootstrap success and each locale change fire it
// exactly once.
type Base struct {
	name   string
	loader *i18n.Loader
	events *bus.Bus
	log    logging.Logger
	notify func()

	mu       sync.Mutex
	provider *i18n.Provider
	sub      *bus.Subscription
	locale   string
	ready    bool
	closed   bool
}

func NewBase(name string, loader *i18n.Loader, events *bus.Bus, log logging.Logger, notify func()) *Base {
	if log == nil {
		log = logging.Nop()
	}
	return &Base{
		name:   name,
		loader: loader,
		events: events,
		log:    log.With(logging.F("card", name)),
		notify: notify,
	}
}

func (b *Base) Name() string {
	return b.name
}

// Bootstrap acquires the shared provider, records the resolved locale,
// subscribes to locale changes and triggers the first render. Any
// failure is fatal for the card: no render happens and the error goes
// back to the host.
func (b *Base) Bootstrap(ctx context.Context) error {
	provider, err := b.loader.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap %s: %w", b.name, err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		b.loader.Release()
		return fmt.Errorf("bootstrap %s: card already closed", b.name)
	}
	b.provider = provider
	b.locale = provider.Locale()
	b.ready = true
	b.mu.Unlock()

	sub := b.events.Subscribe(b.handleLocaleChange)
	b.mu.Lock()
	if b.closed {
		// Teardown won the race; Close already released the provider.
		b.mu.Unlock()
		sub.Cancel()
		return fmt.Errorf("bootstrap %s: card already closed", b.name)
	}
	b.sub = sub
	b.mu.Unlock()

	b.log.Info("card ready", logging.F("locale", provider.Locale()))
	b.requestRender()
	return nil
}

// handleLocaleChange updates the stored locale, switches the shared
// provider and re-renders once. It never reloads data; locale changes
// affect labels, not the note collection.
func (b *Base) handleLocaleChange(change bus.LocaleChange) {
	b.mu.Lock()
	if b.closed || !b.ready {
		b.mu.Unlock()
		return
	}
	b.locale = change.Locale
	provider := b.provider
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), localeSwitchTimeout)
	defer cancel()
	if err := provider.SetLocale(ctx, change.Locale); err != nil {
		b.log.Warn("locale switch failed, keeping previous translations",
			logging.F("locale", change.Locale), logging.F("err", err))
	}
	b.requestRender()
}

// T resolves a message key. Before readiness the key comes back
// verbatim so a missing bootstrap is visible instead of masked by
// plausible fallback text; the fallback argument documents the call
// site and is never substituted.
func (b *Base) T(key, fallback string) string {
	_ = fallback
	b.mu.Lock()
	ready, provider := b.ready, b.provider
	b.mu.Unlock()
	if !ready || provider == nil {
		return key
	}
	if value, ok := provider.Lookup(key); ok {
		return value
	}
	return key
}

func (b *Base) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

func (b *Base) Locale() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locale
}

// Alive reports whether results of in-flight work may still be applied.
// Anything resolving after Close checks this and discards its result.
func (b *Base) Alive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed
}

// Close tears the card down: unsubscribes from locale events and
// releases the shared provider handle. Idempotent.
func (b *Base) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	sub := b.sub
	release := b.provider != nil
	b.sub = nil
	b.provider = nil
	b.ready = false
	b.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	if release {
		b.loader.Release()
	}
	b.log.Debug("card closed")
}

func (b *Base) requestRender() {
	b.mu.Lock()
	notify := b.notify
	closed := b.closed
	b.mu.Unlock()
	if closed || notify == nil {
		return
	}
	notify()
}
