package daemon

import (
	"context"
	"errors"
	"strings"
	"time"

	"noteboard/internal/store"
	"noteboard/internal/types"
)

type NoteService struct {
	repo *store.Repository
}

func NewNoteService(repo *store.Repository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context) ([]types.Note, error) {
	if s.repo == nil {
		return nil, unavailableError("note store not available", nil)
	}
	notes, err := s.repo.ListNotes(ctx)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, note types.Note) (*types.Note, error) {
	if s.repo == nil {
		return nil, unavailableError("note store not available", nil)
	}
	normalized, err := normalizeNote(note)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateNote(ctx, normalized)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return created, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if s.repo == nil {
		return unavailableError("note store not available", nil)
	}
	if id <= 0 {
		return invalidError("note id is required", nil)
	}
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return notFoundError("note not found", err)
		}
		return unavailableError(err.Error(), err)
	}
	return nil
}

func normalizeNote(note types.Note) (types.Note, error) {
	note.ID = 0
	note.Title = strings.TrimSpace(note.Title)
	note.Content = strings.TrimSpace(note.Content)
	note.Category = strings.TrimSpace(note.Category)
	note.Date = strings.TrimSpace(note.Date)

	if note.Title == "" {
		return types.Note{}, invalidError("title is required", nil)
	}
	if note.Content == "" {
		return types.Note{}, invalidError("content is required", nil)
	}
	if !types.ValidCategory(note.Category) {
		note.Category = types.DefaultCategory
	}
	if note.Date == "" {
		note.Date = time.Now().Format(types.DateLayout)
	} else if _, err := time.Parse(types.DateLayout, note.Date); err != nil {
		return types.Note{}, invalidError("date must be YYYY-MM-DD", err)
	}
	return note, nil
}
