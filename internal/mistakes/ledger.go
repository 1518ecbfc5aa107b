// Package mistakes tracks per-word mistake counts and the set of words a
// learner has been tested on.
package mistakes

import (
	"context"
	"sort"

	"github.com/jinyu/pindrill/internal/store"
	"github.com/jinyu/pindrill/internal/vocab"
)

// entry is one persisted ledger row. The ledger is stored as an ordered
// list rather than a map: list order is first-offense order, which breaks
// ties deterministically when ranking mistakes.
type entry struct {
	WordID string `json:"wordId"`
	Count  int    `json:"count"`
}

// Ledger persists mistake counts and seen-word ids.
type Ledger struct {
	kv store.KV
}

// NewLedger creates a Ledger backed by kv.
func NewLedger(kv store.KV) *Ledger {
	return &Ledger{kv: kv}
}

// RecordResults folds a finished test into the ledger, in result order.
// A correct answer decrements the word's count, removing the entry at
// zero. An incorrect answer increments it, appending a new entry at one.
// Every tested word is added to the seen set either way.
func (l *Ledger) RecordResults(ctx context.Context, results []vocab.TestResult) {
	entries := l.load(ctx)
	seen := store.Load(ctx, l.kv, store.KeySeenWords, []string{})
	seenSet := make(map[string]bool, len(seen))
	for _, id := range seen {
		seenSet[id] = true
	}

	for _, res := range results {
		id := res.Word.ID
		if !seenSet[id] {
			seenSet[id] = true
			seen = append(seen, id)
		}

		idx := -1
		for i, e := range entries {
			if e.WordID == id {
				idx = i
				break
			}
		}

		if res.Correct {
			if idx >= 0 {
				entries[idx].Count--
				if entries[idx].Count <= 0 {
					entries = append(entries[:idx], entries[idx+1:]...)
				}
			}
		} else {
			if idx >= 0 {
				entries[idx].Count++
			} else {
				entries = append(entries, entry{WordID: id, Count: 1})
			}
		}
	}

	store.Save(ctx, l.kv, store.KeyMistakes, entries)
	store.Save(ctx, l.kv, store.KeySeenWords, seen)
}

// TopMistakes returns up to n pool words with an outstanding mistake
// count, highest count first. Equal counts keep first-offense order, so
// the ranking is stable across calls.
func (l *Ledger) TopMistakes(ctx context.Context, pool []vocab.Word, n int) []vocab.Word {
	entries := l.load(ctx)

	byID := make(map[string]vocab.Word, len(pool))
	for _, w := range pool {
		byID[w.ID] = w
	}

	// Stable sort keeps ledger order, i.e. first-offense order, within ties.
	ranked := make([]entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	var out []vocab.Word
	for _, e := range ranked {
		if len(out) >= n {
			break
		}
		if w, ok := byID[e.WordID]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Counts returns the current mistake count per word id.
func (l *Ledger) Counts(ctx context.Context) map[string]int {
	entries := l.load(ctx)
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.WordID] = e.Count
	}
	return counts
}

// SeenIDs returns the set of word ids that have appeared in a test.
func (l *Ledger) SeenIDs(ctx context.Context) map[string]bool {
	seen := store.Load(ctx, l.kv, store.KeySeenWords, []string{})
	set := make(map[string]bool, len(seen))
	for _, id := range seen {
		set[id] = true
	}
	return set
}

func (l *Ledger) load(ctx context.Context) []entry {
	return store.Load(ctx, l.kv, store.KeyMistakes, []entry{})
}
