package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/bus"
	"noteboard/internal/types"
	"noteboard/internal/view"
	"noteboard/internal/widget"
)

// SettingsAPI is the slice of the client the locale switch needs.
type SettingsAPI interface {
	UpdateSettings(ctx context.Context, settings types.Settings) (*types.Settings, error)
}

func bootstrapCardsCmd(cards ...interface {
	Init(ctx context.Context) error
}) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		for _, card := range cards {
			if err := card.Init(ctx); err != nil {
				return cardsReadyMsg{err: err}
			}
		}
		return cardsReadyMsg{}
	}
}

func refreshNotesCmd(card *widget.NotesCard) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		return notesRefreshedMsg{err: card.Refresh(ctx)}
	}
}

func createNoteCmd(card *widget.NotesCard, form view.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		return noteCreatedMsg{err: card.Submit(ctx, form)}
	}
}

func deleteNoteCmd(card *widget.NotesCard, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		return noteDeletedMsg{err: card.Delete(ctx, id)}
	}
}

// switchLocaleCmd persists the locale server-side and then publishes
// the change so every card re-resolves its translations.
func switchLocaleCmd(api SettingsAPI, events *bus.Bus, locale string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		if _, err := api.UpdateSettings(ctx, types.Settings{Locale: locale}); err != nil {
			return localeSwitchedMsg{locale: locale, err: err}
		}
		events.Publish(bus.LocaleChange{Locale: locale})
		return localeSwitchedMsg{locale: locale}
	}
}

func toastTickCmd(at time.Time) tea.Cmd {
	return tea.Tick(time.Until(at)+50*time.Millisecond, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
