package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"noteboard/internal/types"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "noteboard.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestNotesCRUDInIDOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	notes, err := repo.ListNotes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty store, got %d", len(notes))
	}

	first, err := repo.CreateNote(ctx, types.Note{Title: "A", Content: "x", Category: "todo", Date: "2026-08-23"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.CreateNote(ctx, types.Note{Title: "B", Content: "y"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 || second.ID <= first.ID {
		t.Fatalf("expected ascending ids, got %d then %d", first.ID, second.ID)
	}

	notes, err = repo.ListNotes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != first.ID || notes[1].ID != second.ID {
		t.Fatalf("expected id-ordered notes, got %+v", notes)
	}

	if err := repo.DeleteNote(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	notes, _ = repo.ListNotes(ctx)
	if len(notes) != 1 || notes[0].ID != second.ID {
		t.Fatalf("unexpected notes after delete: %+v", notes)
	}
}

func TestDeleteMissingNote(t *testing.T) {
	repo := openTestRepo(t)
	if err := repo.DeleteNote(context.Background(), 42); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestSettingsDefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	settings, err := repo.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.Locale != types.DefaultLocale {
		t.Fatalf("expected default locale, got %q", settings.Locale)
	}

	if err := repo.SaveSettings(ctx, types.Settings{Locale: "fr_FR"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	settings, _ = repo.Settings(ctx)
	if settings.Locale != "fr_FR" {
		t.Fatalf("expected fr_FR, got %q", settings.Locale)
	}
}

func TestTranslationsUnknownLocaleIsEmpty(t *testing.T) {
	repo := openTestRepo(t)
	table, err := repo.Translations(context.Background(), "xx_XX")
	if err != nil {
		t.Fatalf("translations: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestSeedTranslationsLeavesExistingAlone(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	if err := repo.PutTranslations(ctx, "en_US", map[string]string{"notes.title": "Customized"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	err := repo.SeedTranslations(ctx, map[string]map[string]string{
		"en_US": {"notes.title": "Notes"},
		"fr_FR": {"notes.title": "Mes notes"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	table, _ := repo.Translations(ctx, "en_US")
	if table["notes.title"] != "Customized" {
		t.Fatalf("seed must not overwrite, got %v", table)
	}
	table, _ = repo.Translations(ctx, "fr_FR")
	if table["notes.title"] != "Mes notes" {
		t.Fatalf("expected seeded fr_FR table, got %v", table)
	}
}
