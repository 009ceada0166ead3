package types

import "strings"

// DefaultCategory is assigned when a note arrives without a category.
const DefaultCategory = "general"

// Categories is the fixed set a note may belong to. The aggregate's
// "all" bucket is implicit and never stored on a note.
var Categories = []string{"general", "todo", "ideas", "work", "personal"}

type Note struct {
	ID       int64  `json:"id,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"`
}

// DateLayout is the calendar-date form notes are stamped with.
const DateLayout = "2006-01-02"

func ValidCategory(category string) bool {
	for _, known := range Categories {
		if known == category {
			return true
		}
	}
	return false
}

// CategoryOrDefault normalizes the stored category for aggregation.
func (n Note) CategoryOrDefault() string {
	category := strings.TrimSpace(n.Category)
	if category == "" {
		return DefaultCategory
	}
	return category
}
