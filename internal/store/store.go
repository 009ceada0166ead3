// Package store is the server-side persistence layer, backed by bbolt.
// One database file holds the note records, the active settings and the
// seeded translation tables.
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"noteboard/internal/types"
)

var (
	bucketNotes        = []byte("notes")
	bucketSettings     = []byte("settings")
	bucketTranslations = []byte("translations")
	keySettings        = []byte("settings")
)

var ErrNoteNotFound = errors.New("note not found")

type Repository struct {
	db *bolt.DB
}

func Open(path string) (*Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func initSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketNotes); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketSettings); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketTranslations); err != nil {
			return err
		}
		return nil
	})
}

// CreateNote assigns the next sequence id and persists the note.
func (r *Repository) CreateNote(ctx context.Context, note types.Note) (*types.Note, error) {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		note.ID = int64(seq)
		buf, err := json.Marshal(note)
		if err != nil {
			return err
		}
		return b.Put(itob(note.ID), buf)
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns all notes in id order. Big-endian keys make the
// bucket's natural iteration order the insertion order.
func (r *Repository) ListNotes(ctx context.Context) ([]types.Note, error) {
	out := make([]types.Note, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var note types.Note
			if err := json.Unmarshal(v, &note); err != nil {
				return err
			}
			out = append(out, note)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) DeleteNote(ctx context.Context, id int64) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		key := itob(id)
		if b.Get(key) == nil {
			return ErrNoteNotFound
		}
		return b.Delete(key)
	})
}

// Settings returns the stored settings, falling back to the default
// locale when nothing has been written yet.
func (r *Repository) Settings(ctx context.Context) (types.Settings, error) {
	settings := types.Settings{Locale: types.DefaultLocale}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSettings)
		if b == nil {
			return nil
		}
		v := b.Get(keySettings)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &settings)
	})
	if err != nil {
		return types.Settings{}, err
	}
	if strings.TrimSpace(settings.Locale) == "" {
		settings.Locale = types.DefaultLocale
	}
	return settings, nil
}

func (r *Repository) SaveSettings(ctx context.Context, settings types.Settings) error {
	buf, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put(keySettings, buf)
	})
}

// Translations returns the message table for a locale. An unknown
// locale yields an empty table, not an error.
func (r *Repository) Translations(ctx context.Context, locale string) (map[string]string, error) {
	table := map[string]string{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTranslations)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(locale))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (r *Repository) PutTranslations(ctx context.Context, locale string, table map[string]string) error {
	if strings.TrimSpace(locale) == "" {
		return errors.New("locale is required")
	}
	buf, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTranslations).Put([]byte(locale), buf)
	})
}

// SeedTranslations writes tables for locales that have none yet,
// leaving locally modified tables alone.
func (r *Repository) SeedTranslations(ctx context.Context, tables map[string]map[string]string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTranslations)
		for locale, table := range tables {
			if b.Get([]byte(locale)) != nil {
				continue
			}
			buf, err := json.Marshal(table)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(locale), buf); err != nil {
				return err
			}
		}
		return nil
	})
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
