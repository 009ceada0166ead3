// Package view holds the purely local presentation state of a notes
// card: active category filter, list/grid mode, the display cap, and
// the quick-add form. Nothing here touches the network.
package view

import "noteboard/internal/types"

type Mode string

const (
	ModeList Mode = "list"
	ModeGrid Mode = "grid"
)

type State struct {
	SelectedCategory string
	Mode             Mode
	MaxVisible       int
	FormOpen         bool
}

func NewState(maxVisible int) State {
	if maxVisible <= 0 {
		maxVisible = 1
	}
	return State{
		SelectedCategory: notesAll,
		Mode:             ModeList,
		MaxVisible:       maxVisible,
	}
}

const notesAll = "all"

func (s *State) SetMode(mode Mode) {
	if mode != ModeList && mode != ModeGrid {
		return
	}
	s.Mode = mode
}

func (s *State) ToggleMode() {
	if s.Mode == ModeList {
		s.Mode = ModeGrid
		return
	}
	s.Mode = ModeList
}

// FilterBy selects a category filter. Anything outside the known set
// is still accepted; a filter whose category has no notes simply shows
// none rather than erroring.
func (s *State) FilterBy(category string) {
	if category == "" {
		category = notesAll
	}
	s.SelectedCategory = category
}

// Visible applies the category filter then truncates to the first
// maxVisible notes in cache order. This is a display cap, not
// pagination.
func Visible(all []types.Note, selected string, maxVisible int) []types.Note {
	out := make([]types.Note, 0, len(all))
	for _, note := range all {
		if selected != notesAll && note.CategoryOrDefault() != selected {
			continue
		}
		out = append(out, note)
		if maxVisible > 0 && len(out) == maxVisible {
			break
		}
	}
	return out
}

// FilterCycle is the order the UI steps through category filters.
func FilterCycle() []string {
	out := make([]string, 0, len(types.Categories)+1)
	out = append(out, notesAll)
	out = append(out, types.Categories...)
	return out
}
