// Package i18n holds the shared translation provider and the loader
// cards acquire it through. The provider resolves message keys to
// localized strings for the active locale; the loader guarantees it is
// fetched at most once no matter how many cards bootstrap concurrently.
package i18n

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Source is the remote side of the provider: the settings endpoint for
// the active locale and the per-locale message tables.
type Source interface {
	ActiveLocale(ctx context.Context) (string, error)
	Translations(ctx context.Context, locale string) (map[string]string, error)
}

// Provider resolves message keys for the active locale. It is shared
// across every card acquired from the same Loader.
type Provider struct {
	source Source

	mu     sync.RWMutex
	locale string
	table  map[string]string
}

func newProvider(source Source, locale string, table map[string]string) *Provider {
	if table == nil {
		table = map[string]string{}
	}
	return &Provider{source: source, locale: locale, table: table}
}

func (p *Provider) Locale() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

// Lookup resolves key for the active locale. A value identical to the
// key counts as a miss so callers can fall back to the key itself.
func (p *Provider) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	value, ok := p.table[key]
	if !ok || value == "" || value == key {
		return "", false
	}
	return value, true
}

// SetLocale switches the provider to a new locale, fetching its message
// table. On failure the previous locale and table are kept so lookups
// keep working with the translations already loaded.
func (p *Provider) SetLocale(ctx context.Context, locale string) error {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fmt.Errorf("locale is required")
	}
	if p.Locale() == locale {
		return nil
	}
	table, err := p.source.Translations(ctx, locale)
	if err != nil {
		return fmt.Errorf("switch locale to %s: %w", locale, err)
	}
	if table == nil {
		table = map[string]string{}
	}
	p.mu.Lock()
	p.locale = locale
	p.table = table
	p.mu.Unlock()
	return nil
}
