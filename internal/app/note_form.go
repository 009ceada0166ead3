package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/types"
	"noteboard/internal/view"
)

type formField int

const (
	fieldTitle formField = iota
	fieldContent
)

// NoteForm collects a new note. Tab moves between fields, ctrl+o
// cycles the category.
type NoteForm struct {
	title    textinput.Model
	content  textinput.Model
	category int
	focused  formField
}

func NewNoteForm(width int) *NoteForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120
	title.Width = width
	title.Focus()

	content := textinput.New()
	content.Placeholder = "Content"
	content.CharLimit = 500
	content.Width = width

	return &NoteForm{title: title, content: content}
}

func (f *NoteForm) Resize(width int) {
	if width < 10 {
		width = 10
	}
	f.title.Width = width
	f.content.Width = width
}

func (f *NoteForm) Reset() {
	f.title.SetValue("")
	f.content.SetValue("")
	f.category = 0
	f.focusField(fieldTitle)
}

func (f *NoteForm) NextField() {
	if f.focused == fieldTitle {
		f.focusField(fieldContent)
	} else {
		f.focusField(fieldTitle)
	}
}

func (f *NoteForm) focusField(field formField) {
	f.focused = field
	if field == fieldTitle {
		f.title.Focus()
		f.content.Blur()
	} else {
		f.content.Focus()
		f.title.Blur()
	}
}

func (f *NoteForm) CycleCategory() {
	f.category = (f.category + 1) % len(types.Categories)
}

func (f *NoteForm) Form() view.Form {
	return view.Form{
		Title:    f.title.Value(),
		Content:  f.content.Value(),
		Category: types.Categories[f.category],
	}
}

func (f *NoteForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focused == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (f *NoteForm) View() string {
	category := formLabelStyle.Render("category: " + types.Categories[f.category] + " (ctrl+o)")
	return f.title.View() + "\n" + f.content.View() + "\n" + category
}
