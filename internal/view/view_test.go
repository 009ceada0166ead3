package view

import (
	"errors"
	"testing"
	"time"

	"noteboard/internal/types"
)

func sampleNotes() []types.Note {
	return []types.Note{
		{ID: 1, Title: "A", Content: "x", Category: "todo"},
		{ID: 2, Title: "B", Content: "y", Category: "ideas"},
		{ID: 3, Title: "C", Content: "z", Category: "todo"},
		{ID: 4, Title: "D", Content: "w"},
		{ID: 5, Title: "E", Content: "v", Category: "todo"},
	}
}

func TestVisibleAllRespectsCap(t *testing.T) {
	notes := sampleNotes()
	got := Visible(notes, "all", 3)
	if len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
	// Cache order, never re-sorted.
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("expected first three in cache order, got %v", got)
	}

	if n := len(Visible(notes, "all", 10)); n != 5 {
		t.Fatalf("cap above total must show everything, got %d", n)
	}
}

func TestVisibleByCategory(t *testing.T) {
	notes := sampleNotes()
	if n := len(Visible(notes, "todo", 2)); n != 2 {
		t.Fatalf("expected min(count, cap) = 2, got %d", n)
	}
	if n := len(Visible(notes, "todo", 8)); n != 3 {
		t.Fatalf("expected all three todos, got %d", n)
	}
	// Missing category falls back to an empty result, not an error.
	if n := len(Visible(notes, "personal", 8)); n != 0 {
		t.Fatalf("expected no personal notes, got %d", n)
	}
	// Blank categories count as general.
	if n := len(Visible(notes, "general", 8)); n != 1 {
		t.Fatalf("expected one general note, got %d", n)
	}
}

func TestFilterByDefaultsToAll(t *testing.T) {
	state := NewState(8)
	state.FilterBy("todo")
	if state.SelectedCategory != "todo" {
		t.Fatalf("unexpected filter: %s", state.SelectedCategory)
	}
	state.FilterBy("")
	if state.SelectedCategory != "all" {
		t.Fatalf("blank filter must fall back to all, got %s", state.SelectedCategory)
	}
}

func TestModeTransitions(t *testing.T) {
	state := NewState(8)
	if state.Mode != ModeList {
		t.Fatalf("expected list default")
	}
	state.ToggleMode()
	if state.Mode != ModeGrid {
		t.Fatalf("expected grid after toggle")
	}
	state.SetMode("diagram")
	if state.Mode != ModeGrid {
		t.Fatalf("unknown modes must be ignored")
	}
	state.SetMode(ModeList)
	if state.Mode != ModeList {
		t.Fatalf("expected list")
	}
}

func TestFormValidation(t *testing.T) {
	if err := (Form{Title: "  ", Content: "body"}).Validate(); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected title error, got %v", err)
	}
	if err := (Form{Title: "t", Content: " \t"}).Validate(); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("expected content error, got %v", err)
	}
	if err := (Form{Title: "t", Content: "c"}).Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestFormNoteDefaultsAndStamps(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
	note := Form{Title: " Plan ", Content: " body ", Category: "bogus"}.Note(now)
	if note.Title != "Plan" || note.Content != "body" {
		t.Fatalf("expected trimmed fields, got %+v", note)
	}
	if note.Category != types.DefaultCategory {
		t.Fatalf("unknown category must default to general, got %s", note.Category)
	}
	if note.Date != "2026-08-23" {
		t.Fatalf("unexpected date stamp: %s", note.Date)
	}

	note = Form{Title: "t", Content: "c", Category: "todo"}.Note(now)
	if note.Category != "todo" {
		t.Fatalf("valid category must be kept, got %s", note.Category)
	}
}

func TestFilterCycleStartsWithAll(t *testing.T) {
	cycle := FilterCycle()
	if cycle[0] != "all" {
		t.Fatalf("cycle must start with all, got %v", cycle)
	}
	if len(cycle) != len(types.Categories)+1 {
		t.Fatalf("cycle must cover every category, got %v", cycle)
	}
}
