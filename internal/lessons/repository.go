// Package lessons manages the lesson collection: CRUD, manual word entry,
// backup import/export, and first-run seeding.
package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jinyu/pindrill/internal/store"
	"github.com/jinyu/pindrill/internal/vocab"
)

// Repository persists lessons under a single store key. All reads fall
// back to an empty collection, so a fresh or corrupt store behaves like
// an empty one.
type Repository struct {
	kv store.KV
}

// NewRepository creates a Repository backed by kv.
func NewRepository(kv store.KV) *Repository {
	return &Repository{kv: kv}
}

// List returns all lessons in insertion order.
func (r *Repository) List(ctx context.Context) []vocab.Lesson {
	return store.Load(ctx, r.kv, store.KeyLessons, []vocab.Lesson{})
}

// Get returns the lesson with the given id.
func (r *Repository) Get(ctx context.Context, id string) (vocab.Lesson, bool) {
	for _, l := range r.List(ctx) {
		if l.ID == id {
			return l, true
		}
	}
	return vocab.Lesson{}, false
}

// Delete removes the lesson with the given id. Absent ids are a no-op.
// Mistake and seen records for its words are left alone; the selector
// ignores entries whose word no longer exists.
func (r *Repository) Delete(ctx context.Context, id string) {
	all := r.List(ctx)
	kept := all[:0]
	for _, l := range all {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	r.save(ctx, kept)
}

// AllWords returns the union of words across the given lessons, or across
// every lesson when ids is empty.
func (r *Repository) AllWords(ctx context.Context, ids ...string) []vocab.Word {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var words []vocab.Word
	for _, l := range r.List(ctx) {
		if len(ids) > 0 && !want[l.ID] {
			continue
		}
		words = append(words, l.Words...)
	}
	return words
}

// SaveLesson parses rawWordText and creates or updates a lesson. With a
// non-empty existingID the lesson is updated in place and word ids are
// preserved for lines whose character and pinyin match an existing word,
// so mistake history survives an edit. Validation failures write nothing.
func (r *Repository) SaveLesson(ctx context.Context, name, rawWordText, existingID string) (vocab.Lesson, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return vocab.Lesson{}, fmt.Errorf("lesson name cannot be empty")
	}

	entries, err := vocab.ParseWordText(rawWordText)
	if err != nil {
		return vocab.Lesson{}, err
	}

	all := r.List(ctx)

	if existingID != "" {
		for i, l := range all {
			if l.ID != existingID {
				continue
			}
			l.Name = name
			l.Words = mergeWords(l.Words, entries)
			all[i] = l
			r.save(ctx, all)
			return l, nil
		}
		return vocab.Lesson{}, fmt.Errorf("lesson %q not found for updating", existingID)
	}

	lesson := vocab.Lesson{
		ID:    uuid.NewString(),
		Name:  name,
		Words: mergeWords(nil, entries),
	}
	all = append(all, lesson)
	r.save(ctx, all)
	return lesson, nil
}

// mergeWords assigns ids to parsed entries, reusing the id of any existing
// word with the same character and pinyin.
func mergeWords(existing []vocab.Word, entries []vocab.WordEntry) []vocab.Word {
	words := make([]vocab.Word, 0, len(entries))
	for _, e := range entries {
		id := ""
		for _, w := range existing {
			if w.Character == e.Character && w.Pinyin == e.Pinyin {
				id = w.ID
				break
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		words = append(words, vocab.Word{ID: id, Character: e.Character, Pinyin: e.Pinyin})
	}
	return words
}

// Analysis classifies a backup payload against the current collection.
// Lessons are matched by name; duplicates keep their stored counterpart's
// id when committed with overwrite.
type Analysis struct {
	New        []vocab.Lesson
	Duplicates []vocab.Lesson
}

// AnalyzeImport validates a backup payload and splits it into lessons that
// are new and lessons whose name collides with a stored one.
func (r *Repository) AnalyzeImport(ctx context.Context, raw []byte) (Analysis, error) {
	imported, err := decodeBackup(raw)
	if err != nil {
		return Analysis{}, err
	}

	byName := make(map[string]bool)
	for _, l := range r.List(ctx) {
		byName[l.Name] = true
	}

	var a Analysis
	for _, l := range imported {
		if byName[l.Name] {
			a.Duplicates = append(a.Duplicates, l)
		} else {
			a.New = append(a.New, l)
		}
	}
	return a, nil
}

// CommitImport applies an analysis. New lessons are appended with fresh
// ids. With overwrite, duplicate lessons replace the stored lesson's words
// and level in place, keeping the stored id so mistake history survives.
// Returns the number of lessons added and overwritten.
func (r *Repository) CommitImport(ctx context.Context, a Analysis, overwrite bool) (added, replaced int) {
	all := r.List(ctx)

	for _, l := range a.New {
		l.ID = uuid.NewString()
		for i := range l.Words {
			l.Words[i].ID = uuid.NewString()
		}
		all = append(all, l)
		added++
	}

	if overwrite {
		for _, dup := range a.Duplicates {
			for i, l := range all {
				if l.Name != dup.Name {
					continue
				}
				l.Words = mergeWords(l.Words, wordEntries(dup.Words))
				l.Level = dup.Level
				all[i] = l
				replaced++
				break
			}
		}
	}

	if added > 0 || replaced > 0 {
		r.save(ctx, all)
	}
	return added, replaced
}

// ImportLessons is the one-shot form: new lessons are added, name
// collisions are skipped. Errors when the payload is invalid or nothing
// was added.
func (r *Repository) ImportLessons(ctx context.Context, raw []byte) (int, error) {
	a, err := r.AnalyzeImport(ctx, raw)
	if err != nil {
		return 0, err
	}
	added, _ := r.CommitImport(ctx, a, false)
	if added == 0 {
		if len(a.Duplicates) > 0 {
			return 0, fmt.Errorf("nothing imported: all %d lessons already exist", len(a.Duplicates))
		}
		return 0, fmt.Errorf("nothing imported: backup contains no lessons")
	}
	return added, nil
}

func wordEntries(words []vocab.Word) []vocab.WordEntry {
	entries := make([]vocab.WordEntry, len(words))
	for i, w := range words {
		entries[i] = vocab.WordEntry{Character: w.Character, Pinyin: w.Pinyin}
	}
	return entries
}

// ExportJSON renders the full collection as an indented JSON array.
func (r *Repository) ExportJSON(ctx context.Context) ([]byte, error) {
	all := r.List(ctx)
	if len(all) == 0 {
		return nil, fmt.Errorf("there are no lessons to export")
	}
	return json.MarshalIndent(all, "", "  ")
}

// ExportFilename returns the backup filename for the given time, e.g.
// pinyin-lessons-backup-2026-08-29.json.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("pinyin-lessons-backup-%s.json", now.Format("2006-01-02"))
}

// Seed installs the starter and predefined lessons on first run. It does
// nothing once any lesson exists.
func (r *Repository) Seed(ctx context.Context) {
	if len(r.List(ctx)) > 0 {
		return
	}
	r.save(ctx, seedLessons())
}

func (r *Repository) save(ctx context.Context, all []vocab.Lesson) {
	store.Save(ctx, r.kv, store.KeyLessons, all)
}
