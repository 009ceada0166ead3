package view

import (
	"errors"
	"strings"
	"time"

	"noteboard/internal/types"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// Form is the quick-add form's pending state. Validation happens here,
// before any network call is considered.
type Form struct {
	Title    string
	Content  string
	Category string
}

func (f Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(f.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

// Note builds the submission payload: trimmed fields, category
// defaulted to general, date stamped with the submission day.
func (f Form) Note(now time.Time) types.Note {
	category := strings.TrimSpace(f.Category)
	if category == "" || !types.ValidCategory(category) {
		category = types.DefaultCategory
	}
	return types.Note{
		Title:    strings.TrimSpace(f.Title),
		Content:  strings.TrimSpace(f.Content),
		Category: category,
		Date:     now.Format(types.DateLayout),
	}
}

func (f *Form) Reset() {
	f.Title = ""
	f.Content = ""
	f.Category = ""
}
