package notes

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"noteboard/internal/types"
)

type fakeAPI struct {
	notes      []types.Note
	nextID     int64
	listErr    error
	createErr  error
	deleteErr  error
	listCalls  int
	writeCalls int
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]types.Note, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]types.Note, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeAPI) CreateNote(ctx context.Context, note types.Note) (*types.Note, error) {
	f.writeCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	note.ID = f.nextID
	f.notes = append(f.notes, note)
	return &note, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id int64) error {
	f.writeCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.notes[:0]
	for _, note := range f.notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	f.notes = kept
	return nil
}

func TestLoadBuildsAggregate(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{
		{ID: 1, Title: "A", Content: "x", Category: "todo"},
		{ID: 2, Title: "B", Content: "y", Category: "todo"},
		{ID: 3, Title: "C", Content: "z", Category: "ideas"},
		{ID: 4, Title: "D", Content: "w"},
	}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	counts := store.Counts()
	want := map[string]int{AllCategory: 4, "todo": 2, "ideas": 1, "general": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("unexpected aggregate: %v", counts)
	}

	sum := 0
	for category, count := range counts {
		if category != AllCategory {
			sum += count
		}
	}
	if sum != store.Total() {
		t.Fatalf("per-category counts sum to %d, total is %d", sum, store.Total())
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{{ID: 1, Title: "A", Content: "x", Category: "todo"}}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	first, firstCounts := store.Notes(), store.Counts()
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(first, store.Notes()) || !reflect.DeepEqual(firstCounts, store.Counts()) {
		t.Fatalf("double load must leave cache and aggregate unchanged")
	}
}

func TestLoadFailureClearsCache(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{{ID: 1, Title: "A", Content: "x"}}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Total() != 1 {
		t.Fatalf("seed load failed")
	}

	api.listErr = errors.New("transport down")
	if err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if len(store.Notes()) != 0 || store.Total() != 0 {
		t.Fatalf("failed load must clear the cache, got %d notes", len(store.Notes()))
	}
}

func TestCreateReloadsOnSuccess(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(api, nil)
	if err := store.Create(context.Background(), types.Note{Title: "A", Content: "x", Category: "todo"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	cached := store.Notes()
	if len(cached) != 1 {
		t.Fatalf("expected reload to pick up the new note, got %d", len(cached))
	}
	if cached[0].ID == 0 {
		t.Fatalf("expected server-assigned id in cache")
	}
	if store.Count("todo") != 1 || store.Total() != 1 {
		t.Fatalf("aggregate not updated after create: %v", store.Counts())
	}
}

func TestCreateFailureLeavesCacheUntouched(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{{ID: 1, Title: "A", Content: "x", Category: "todo"}}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	api.createErr = errors.New("500")
	if err := store.Create(context.Background(), types.Note{Title: "B", Content: "y"}); err == nil {
		t.Fatalf("expected create error")
	}
	if len(store.Notes()) != 1 || store.Count("todo") != 1 {
		t.Fatalf("cache must be untouched after failed create")
	}
}

func TestDeleteFailureLeavesCacheUntouched(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{{ID: 1, Title: "A", Content: "x", Category: "todo"}}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	api.deleteErr = errors.New("409")
	if err := store.Delete(context.Background(), 1); err == nil {
		t.Fatalf("expected delete error")
	}
	if len(store.Notes()) != 1 {
		t.Fatalf("cache must be untouched after failed delete")
	}
}

func TestDeleteReloadsOnSuccess(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{
		{ID: 1, Title: "A", Content: "x", Category: "todo"},
		{ID: 2, Title: "B", Content: "y", Category: "ideas"},
	}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := store.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Total() != 1 || store.Count("todo") != 0 {
		t.Fatalf("aggregate must reflect the delete: %v", store.Counts())
	}
}

func TestMissingCategoryCountsAsGeneral(t *testing.T) {
	api := &fakeAPI{notes: []types.Note{
		{ID: 1, Title: "A", Content: "x"},
		{ID: 2, Title: "B", Content: "y", Category: "  "},
	}}
	store := NewStore(api, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Count(types.DefaultCategory) != 2 {
		t.Fatalf("blank categories must default to general: %v", store.Counts())
	}
}
