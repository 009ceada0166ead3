// Package app is the terminal dashboard: a bubbletea host composing
// the notes and summary cards, with a form, confirm dialog, markdown
// preview and toasts layered on top.
package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/bus"
	"noteboard/internal/client"
	"noteboard/internal/config"
	"noteboard/internal/i18n"
	"noteboard/internal/logging"
	"noteboard/internal/widget"
)

// localeCycle is the order the locale hotkey steps through. The seeded
// translation tables cover exactly these.
var localeCycle = []string{"en_US", "fr_FR", "de_DE"}

type Model struct {
	client  *client.Client
	log     logging.Logger
	events  *bus.Bus
	notes   *widget.NotesCard
	summary *widget.SummaryCard

	form    *NoteForm
	confirm *ConfirmController

	width   int
	height  int
	ready   bool
	loadErr string

	previewOpen bool

	// preferredLocale overrides the server-side locale at startup when
	// set in the config. Empty means follow the server.
	preferredLocale string

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
}

func NewModel(c *client.Client, cfg config.Config, log logging.Logger) *Model {
	if log == nil {
		log = logging.Nop()
	}
	events := bus.New()
	loader := i18n.NewLoader(c)

	opts := widget.DefaultOptions()
	if cfg.Cards.Notes.MaxNotes > 0 {
		opts.MaxNotes = cfg.Cards.Notes.MaxNotes
	}
	if cfg.Cards.Notes.ShowCategories != nil {
		opts.ShowCategories = *cfg.Cards.Notes.ShowCategories
	}

	notes := widget.NewNotesCard(loader, events, c, opts, log, nil)
	summary := widget.NewSummaryCard(loader, events, notes.Store(), log, nil)

	return &Model{
		client:          c,
		log:             log,
		events:          events,
		notes:           notes,
		summary:         summary,
		form:            NewNoteForm(40),
		confirm:         NewConfirmController(),
		preferredLocale: strings.TrimSpace(cfg.UI.Locale),
	}
}

// Run starts the dashboard, making sure a daemon is reachable first.
func Run(c *client.Client, cfg config.Config, log logging.Logger) error {
	model := NewModel(c, cfg, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	model.closeCards()
	return err
}

func (m *Model) closeCards() {
	m.summary.Close()
	m.notes.Close()
}

func (m *Model) Init() tea.Cmd {
	return bootstrapCardsCmd(m.notes, m.summary)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.Resize(msg.Width / 2)
		return m, nil

	case cardsReadyMsg:
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			m.log.Error("card bootstrap failed", logging.F("err", msg.err))
			return m, nil
		}
		m.ready = true
		if m.preferredLocale != "" && m.preferredLocale != m.notes.Locale() {
			return m, switchLocaleCmd(m.client, m.events, m.preferredLocale)
		}
		return m, nil

	case notesRefreshedMsg:
		if !m.notes.Alive() {
			return m, nil
		}
		m.notes.ClampSelection()
		if msg.err != nil {
			m.showWarningToast(m.notes.T("note.create_failed", "Could not load notes"))
		}
		return m, nil

	case noteCreatedMsg:
		if !m.notes.Alive() {
			return m, nil
		}
		m.notes.ClampSelection()
		if msg.err != nil {
			m.failureToast("note.create_failed", "Could not create note", msg.err)
			return m, toastTickCmd(m.toastUntil)
		}
		m.notes.CloseForm()
		m.form.Reset()
		m.showInfoToast(m.notes.T("note.created_success", "Note created successfully"))
		return m, toastTickCmd(m.toastUntil)

	case noteDeletedMsg:
		if !m.notes.Alive() {
			return m, nil
		}
		m.notes.ClampSelection()
		if msg.err != nil {
			m.failureToast("note.delete_failed", "Could not delete note", msg.err)
		} else {
			m.showInfoToast(m.notes.T("note.deleted", "Note deleted"))
		}
		return m, toastTickCmd(m.toastUntil)

	case localeSwitchedMsg:
		if !m.notes.Alive() {
			return m, nil
		}
		if msg.err != nil {
			m.failureToast("locale.switch_failed", "Could not change language", msg.err)
		} else {
			m.showInfoToast(m.notes.T("locale.switched", "Language changed"))
		}
		return m, toastTickCmd(m.toastUntil)

	case toastTickMsg:
		if !m.toastActive(time.Now()) {
			m.clearToast()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if handled, choice := m.confirm.HandleKey(msg); handled {
		switch choice {
		case confirmChoiceConfirm:
			m.confirm.Close()
			if note, ok := m.notes.Selected(); ok {
				return m, deleteNoteCmd(m.notes, note.ID)
			}
		case confirmChoiceCancel:
			m.confirm.Close()
		}
		return m, nil
	}

	if m.notes.FormOpen() {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m, refreshNotesCmd(m.notes)
	case "n":
		if m.ready {
			m.form.Reset()
			m.notes.OpenForm()
		}
		return m, nil
	case "d":
		if _, ok := m.notes.Selected(); ok {
			m.confirm.Open(m.notes.T("note.delete_confirm", "Delete this note?"))
		}
		return m, nil
	case "tab":
		m.notes.CycleFilter()
		return m, nil
	case "g":
		m.notes.ToggleMode()
		return m, nil
	case "j", "down":
		m.notes.MoveSelection(1)
		return m, nil
	case "k", "up":
		m.notes.MoveSelection(-1)
		return m, nil
	case "l":
		return m, switchLocaleCmd(m.client, m.events, m.nextLocale())
	case "p":
		m.previewOpen = !m.previewOpen
		return m, nil
	case "y":
		if note, ok := m.notes.Selected(); ok {
			if err := copyTextToClipboard(note.Content); err != nil {
				m.showErrorToast("copy failed")
			} else {
				m.showInfoToast("copied")
			}
			return m, toastTickCmd(m.toastUntil)
		}
		return m, nil
	case "esc":
		m.previewOpen = false
		return m, nil
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.notes.CloseForm()
		m.form.Reset()
		return m, nil
	case "tab":
		m.form.NextField()
		return m, nil
	case "ctrl+o":
		m.form.CycleCategory()
		return m, nil
	case "enter":
		form := m.form.Form()
		if err := form.Validate(); err != nil {
			m.showWarningToast(err.Error())
			return m, toastTickCmd(m.toastUntil)
		}
		return m, createNoteCmd(m.notes, form)
	}
	return m, m.form.Update(msg)
}

// failureToast shows an error toast for a failed request, tagging the
// HTTP status so a rejected payload reads differently from a server
// fault.
func (m *Model) failureToast(key, fallback string, err error) {
	text := m.notes.T(key, fallback)
	if apiErr := client.AsAPIError(err); apiErr != nil {
		text = fmt.Sprintf("%s (%d)", text, apiErr.StatusCode)
	}
	m.showErrorToast(text)
}

func (m *Model) nextLocale() string {
	current := m.notes.Locale()
	for i, locale := range localeCycle {
		if locale == current {
			return localeCycle[(i+1)%len(localeCycle)]
		}
	}
	return localeCycle[0]
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.loadErr != "" {
		return headerStyle.Render("noteboard") + "\n\n" +
			statusStyle.Render("startup failed: "+m.loadErr) + "\n" +
			helpStyle.Render("q quit")
	}
	if !m.ready {
		return headerStyle.Render("noteboard") + "\n\n" + statusStyle.Render("loading…")
	}

	var b strings.Builder
	header := headerStyle.Render("noteboard")
	locale := statusStyle.Render(m.notes.Locale())
	b.WriteString(header + " " + locale + "\n")

	notesWidth := m.width * 2 / 3
	summaryWidth := m.width - notesWidth
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.notes.Render(notesWidth),
		m.summary.Render(summaryWidth),
	)
	b.WriteString(cards + "\n")

	if m.previewOpen {
		if note, ok := m.notes.Selected(); ok {
			preview := renderMarkdown(note.Content, max(20, m.width-4))
			b.WriteString(previewStyle.Width(m.width - 2).Render(preview) + "\n")
		}
	}

	if m.notes.FormOpen() {
		b.WriteString(m.form.View() + "\n")
	}
	if m.confirm.IsOpen() {
		b.WriteString(m.confirm.View(m.width) + "\n")
	}
	if toast := m.toastLine(m.width); toast != "" {
		b.WriteString(toast + "\n")
	}
	b.WriteString(helpStyle.Render("n new  d delete  r refresh  tab filter  g grid  l language  p preview  y copy  q quit"))
	return b.String()
}
