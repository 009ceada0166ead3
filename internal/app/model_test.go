package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/client"
	"noteboard/internal/config"
	"noteboard/internal/types"
)

type backendCounters struct {
	creates atomic.Int64
	deletes atomic.Int64
}

func newBackend(t *testing.T) (*httptest.Server, *backendCounters) {
	t.Helper()
	counters := &backendCounters{}
	notes := []types.Note{
		{ID: 1, Title: "First", Content: "body", Category: "todo", Date: "2026-08-23"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/settings":
			_ = json.NewEncoder(w).Encode(types.Settings{Locale: "en_US"})
		case strings.HasPrefix(r.URL.Path, "/api/v1/translations/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"locale": "en_US",
				"translations": map[string]string{
					"notes.title":         "Notes",
					"note.delete_confirm": "Delete this note?",
				},
			})
		case r.URL.Path == "/api/v1/notes" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"notes": notes})
		case r.URL.Path == "/api/v1/notes" && r.Method == http.MethodPost:
			counters.creates.Add(1)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(types.Note{ID: 2})
		case strings.HasPrefix(r.URL.Path, "/api/v1/notes/") && r.Method == http.MethodDelete:
			counters.deletes.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, counters
}

func readyModel(t *testing.T) (*Model, *backendCounters) {
	t.Helper()
	server, counters := newBackend(t)
	model := NewModel(client.NewWithBaseURL(server.URL, "token"), config.Default(), nil)
	t.Cleanup(model.closeCards)

	msg := model.Init()()
	ready, ok := msg.(cardsReadyMsg)
	if !ok || ready.err != nil {
		t.Fatalf("bootstrap failed: %+v", msg)
	}
	updated, _ := model.Update(ready)
	model = updated.(*Model)
	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(*Model), counters
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBootstrapRendersCards(t *testing.T) {
	model, _ := readyModel(t)
	out := model.View()
	if !strings.Contains(out, "Notes") {
		t.Fatalf("expected translated card title in view:\n%s", out)
	}
	if !strings.Contains(out, "First") {
		t.Fatalf("expected loaded note in view:\n%s", out)
	}
}

func TestEmptyFormSubmitStaysLocal(t *testing.T) {
	model, counters := readyModel(t)

	updated, _ := model.Update(keyMsg("n"))
	model = updated.(*Model)
	if !model.notes.FormOpen() {
		t.Fatalf("expected open form")
	}

	updated, cmd := model.Update(keyMsg("enter"))
	model = updated.(*Model)
	if cmd == nil {
		t.Fatalf("expected toast tick command")
	}
	if counters.creates.Load() != 0 {
		t.Fatalf("invalid form must not reach the network")
	}
	if !model.toastActive(time.Now()) {
		t.Fatalf("expected validation toast")
	}
	if !model.notes.FormOpen() {
		t.Fatalf("form stays open after failed validation")
	}
}

func TestDeclinedConfirmSkipsDelete(t *testing.T) {
	model, counters := readyModel(t)

	updated, _ := model.Update(keyMsg("d"))
	model = updated.(*Model)
	if !model.confirm.IsOpen() {
		t.Fatalf("expected confirm dialog")
	}

	updated, cmd := model.Update(keyMsg("esc"))
	model = updated.(*Model)
	if cmd != nil {
		t.Fatalf("declined confirm must not issue a command")
	}
	if model.confirm.IsOpen() {
		t.Fatalf("dialog must close on decline")
	}
	if counters.deletes.Load() != 0 {
		t.Fatalf("declined delete must not reach the network")
	}
}

func TestConfirmedDeleteIssuesRequest(t *testing.T) {
	model, counters := readyModel(t)

	updated, _ := model.Update(keyMsg("d"))
	model = updated.(*Model)
	updated, cmd := model.Update(keyMsg("y"))
	model = updated.(*Model)
	if cmd == nil {
		t.Fatalf("confirmed delete must issue a command")
	}
	msg := cmd()
	if deleted, ok := msg.(noteDeletedMsg); !ok || deleted.err != nil {
		t.Fatalf("unexpected delete result: %+v", msg)
	}
	if counters.deletes.Load() != 1 {
		t.Fatalf("expected one delete request, got %d", counters.deletes.Load())
	}
}

func TestLocaleCycleWrapsAround(t *testing.T) {
	model, _ := readyModel(t)
	if got := model.nextLocale(); got != "fr_FR" {
		t.Fatalf("expected fr_FR after en_US, got %q", got)
	}
}

func TestLocaleSwitchFailureToastIsTranslated(t *testing.T) {
	model, _ := readyModel(t)

	updated, _ := model.Update(localeSwitchedMsg{
		locale: "fr_FR",
		err:    &client.APIError{StatusCode: http.StatusServiceUnavailable, Message: "store unavailable"},
	})
	model = updated.(*Model)

	if !strings.Contains(model.toastText, "locale.switch_failed") {
		t.Fatalf("failure toast must resolve through the message table, got %q", model.toastText)
	}
	if !strings.Contains(model.toastText, "(503)") {
		t.Fatalf("failure toast must carry the status, got %q", model.toastText)
	}
}

func TestCreateFailureToastShowsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/settings":
			_ = json.NewEncoder(w).Encode(types.Settings{Locale: "en_US"})
		case strings.HasPrefix(r.URL.Path, "/api/v1/translations/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"locale":       "en_US",
				"translations": map[string]string{},
			})
		case r.URL.Path == "/api/v1/notes" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"notes": []types.Note{}})
		case r.URL.Path == "/api/v1/notes" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "date must be YYYY-MM-DD"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	model := NewModel(client.NewWithBaseURL(server.URL, "token"), config.Default(), nil)
	t.Cleanup(model.closeCards)
	msg := model.Init()()
	updated, _ := model.Update(msg)
	model = updated.(*Model)
	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(*Model)

	updated, _ = model.Update(keyMsg("n"))
	model = updated.(*Model)
	model.form.title.SetValue("Plan")
	model.form.content.SetValue("write the plan")

	updated, cmd := model.Update(keyMsg("enter"))
	model = updated.(*Model)
	if cmd == nil {
		t.Fatalf("expected create command")
	}
	updated, _ = model.Update(cmd())
	model = updated.(*Model)

	if !strings.Contains(model.toastText, "(400)") {
		t.Fatalf("rejected payload must surface the status, got %q", model.toastText)
	}
	if model.toastLevel != toastLevelError {
		t.Fatalf("expected error toast, got level %d", model.toastLevel)
	}
}

func TestConfigLocaleOverridesAtStartup(t *testing.T) {
	server, _ := newBackend(t)
	cfg := config.Default()
	cfg.UI.Locale = "fr_FR"
	model := NewModel(client.NewWithBaseURL(server.URL, "token"), cfg, nil)
	t.Cleanup(model.closeCards)

	msg := model.Init()()
	updated, cmd := model.Update(msg)
	model = updated.(*Model)
	if cmd == nil {
		t.Fatalf("configured locale must trigger a switch at startup")
	}
	switched, ok := cmd().(localeSwitchedMsg)
	if !ok || switched.err != nil || switched.locale != "fr_FR" {
		t.Fatalf("unexpected switch result: %+v", switched)
	}
	if model.notes.Locale() != "fr_FR" {
		t.Fatalf("cards must follow the configured locale, got %q", model.notes.Locale())
	}
}
