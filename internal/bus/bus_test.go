package bus

import (
	"testing"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe(func(LocaleChange) { got = append(got, "first") })
	b.Subscribe(func(LocaleChange) { got = append(got, "second") })

	b.Publish(LocaleChange{Locale: "fr_FR"})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub := b.Subscribe(func(LocaleChange) { count++ })

	b.Publish(LocaleChange{Locale: "de_DE"})
	sub.Cancel()
	sub.Cancel() // idempotent
	b.Publish(LocaleChange{Locale: "en_US"})

	if count != 1 {
		t.Fatalf("expected one delivery, got %d", count)
	}
	if b.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", b.Subscribers())
	}
}

func TestHandlerReceivesPayload(t *testing.T) {
	b := New()
	var locale string
	b.Subscribe(func(change LocaleChange) { locale = change.Locale })
	b.Publish(LocaleChange{Locale: "fr_FR"})
	if locale != "fr_FR" {
		t.Fatalf("unexpected payload: %q", locale)
	}
}

func TestCancelDuringPublishIsSafe(t *testing.T) {
	b := New()
	var sub *Subscription
	calls := 0
	sub = b.Subscribe(func(LocaleChange) {
		calls++
		sub.Cancel()
	})
	b.Publish(LocaleChange{Locale: "en_US"})
	b.Publish(LocaleChange{Locale: "en_US"})
	if calls != 1 {
		t.Fatalf("expected handler to run once, got %d", calls)
	}
}
