package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"

	"noteboard/internal/bus"
	"noteboard/internal/i18n"
	"noteboard/internal/logging"
	"noteboard/internal/notes"
	"noteboard/internal/types"
	"noteboard/internal/view"
)

// NotesCard is the notes widget: the shared lifecycle plus its own
// store, aggregate and view state. All view-state mutation happens on
// the host's update loop; the store guards itself for the async load,
// create and delete paths.
type NotesCard struct {
	*Base
	store *notes.Store
	state view.State
	opts  Options

	selected int
}

func NewNotesCard(loader *i18n.Loader, events *bus.Bus, api notes.API, opts Options, log logging.Logger, notify func()) *NotesCard {
	if opts.MaxNotes <= 0 {
		opts.MaxNotes = DefaultOptions().MaxNotes
	}
	return &NotesCard{
		Base:  NewBase("notes", loader, events, log, notify),
		store: notes.NewStore(api, log),
		state: view.NewState(opts.MaxNotes),
		opts:  opts,
	}
}

// Init bootstraps translations and then populates the store. A load
// failure is data-soft: the card comes up with an empty collection.
func (c *NotesCard) Init(ctx context.Context) error {
	if err := c.Bootstrap(ctx); err != nil {
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

// Refresh reloads the collection. The returned error is informational;
// the card renders the empty state on failure either way. Only the
// store is touched here, so Refresh is safe to run off the update
// loop; the host clamps the selection when it applies the result.
func (c *NotesCard) Refresh(ctx context.Context) error {
	return c.store.Load(ctx)
}

// Submit validates the pending form and issues the create. Validation
// failures short-circuit before any network call. On success the store
// has already reloaded, so the caller only needs to close the form.
func (c *NotesCard) Submit(ctx context.Context, form view.Form) error {
	if err := form.Validate(); err != nil {
		return err
	}
	return c.store.Create(ctx, form.Note(time.Now()))
}

// Delete removes a note the user has already confirmed.
func (c *NotesCard) Delete(ctx context.Context, id int64) error {
	return c.store.Delete(ctx, id)
}

func (c *NotesCard) Store() *notes.Store {
	return c.store
}

func (c *NotesCard) State() view.State {
	return c.state
}

func (c *NotesCard) Options() Options {
	return c.opts
}

func (c *NotesCard) FormOpen() bool {
	return c.state.FormOpen
}

func (c *NotesCard) OpenForm() {
	c.state.FormOpen = true
}

func (c *NotesCard) CloseForm() {
	c.state.FormOpen = false
}

func (c *NotesCard) ToggleMode() {
	c.state.ToggleMode()
}

func (c *NotesCard) FilterBy(category string) {
	c.state.FilterBy(category)
	c.selected = 0
}

// CycleFilter steps to the next category filter in the fixed order.
func (c *NotesCard) CycleFilter() {
	cycle := view.FilterCycle()
	next := cycle[0]
	for i, category := range cycle {
		if category == c.state.SelectedCategory {
			next = cycle[(i+1)%len(cycle)]
			break
		}
	}
	c.FilterBy(next)
}

// Visible is the filtered, capped slice the card renders.
func (c *NotesCard) Visible() []types.Note {
	return view.Visible(c.store.Notes(), c.state.SelectedCategory, c.state.MaxVisible)
}

func (c *NotesCard) MoveSelection(delta int) {
	c.selected += delta
	c.ClampSelection()
}

func (c *NotesCard) Selected() (types.Note, bool) {
	visible := c.Visible()
	if len(visible) == 0 || c.selected < 0 || c.selected >= len(visible) {
		return types.Note{}, false
	}
	return visible[c.selected], true
}

func (c *NotesCard) ClampSelection() {
	visible := len(c.Visible())
	if visible == 0 {
		c.selected = 0
		return
	}
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected >= visible {
		c.selected = visible - 1
	}
}

// Render draws the card. Before readiness it draws nothing; the host
// never shows an untranslated card.
func (c *NotesCard) Render(width int) string {
	if !c.Ready() {
		return ""
	}
	if width < 20 {
		width = 20
	}
	inner := width - 4

	var lines []string
	title := cardTitleStyle.Render(c.T("notes.title", "Notes"))
	mode := noteMetaStyle.Render("[" + string(c.state.Mode) + "]")
	lines = append(lines, padBetween(title, mode, inner))

	if c.opts.ShowCategories {
		lines = append(lines, c.renderChips(inner))
	}

	visible := c.Visible()
	if len(visible) == 0 {
		lines = append(lines, emptyStyle.Render(c.T("notes.empty", "No notes yet")))
	} else if c.state.Mode == view.ModeGrid {
		lines = append(lines, c.renderGrid(visible, inner)...)
	} else {
		lines = append(lines, c.renderList(visible, inner)...)
	}

	if c.state.FormOpen {
		lines = append(lines, noteMetaStyle.Render(c.T("notes.form.hint", "enter: save, esc: cancel")))
	}

	return cardBorderStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (c *NotesCard) renderChips(inner int) string {
	counts := c.store.Counts()
	parts := make([]string, 0, len(view.FilterCycle()))
	for _, category := range view.FilterCycle() {
		label := fmt.Sprintf("%s(%d)", c.T("category."+category, category), counts[category])
		if category == c.state.SelectedCategory {
			parts = append(parts, chipSelectedStyle.Render(label))
		} else {
			parts = append(parts, chipStyle.Render(label))
		}
	}
	return xansi.Truncate(strings.Join(parts, " "), inner, "…")
}

func (c *NotesCard) renderList(visible []types.Note, inner int) []string {
	lines := make([]string, 0, len(visible))
	for i, note := range visible {
		row := fmt.Sprintf("• %s", note.Title)
		meta := fmt.Sprintf(" %s %s", note.CategoryOrDefault(), note.Date)
		body := xansi.Truncate(row, max(1, inner-xansi.StringWidth(meta)), "…")
		style := noteRowStyle
		if i == c.selected {
			style = noteSelectedStyle
		}
		lines = append(lines, style.Render(body)+noteMetaStyle.Render(meta))
	}
	return lines
}

func (c *NotesCard) renderGrid(visible []types.Note, inner int) []string {
	const columns = 2
	cellWidth := max(10, inner/columns-2)
	var rows []string
	for start := 0; start < len(visible); start += columns {
		end := min(start+columns, len(visible))
		cells := make([]string, 0, columns)
		for i := start; i < end; i++ {
			note := visible[i]
			title := xansi.Truncate(note.Title, cellWidth, "…")
			title = runewidth.FillRight(title, cellWidth)
			meta := runewidth.FillRight(
				xansi.Truncate(note.CategoryOrDefault(), cellWidth, "…"), cellWidth)
			cell := title + "\n" + noteMetaStyle.Render(meta)
			if i == c.selected {
				cell = noteSelectedStyle.Render(title) + "\n" + noteMetaStyle.Render(meta)
			}
			cells = append(cells, gridCellStyle.Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rows
}

func padBetween(left, right string, width int) string {
	gap := width - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
