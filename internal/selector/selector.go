// Package selector builds the word list for a test round, mixing words
// the learner keeps getting wrong with words they have never been asked.
package selector

import (
	"context"
	"math/rand"

	"github.com/jinyu/pindrill/internal/lessons"
	"github.com/jinyu/pindrill/internal/mistakes"
	"github.com/jinyu/pindrill/internal/vocab"
)

// Config tunes how a round is assembled.
type Config struct {
	// TestSize is the target round length; rounds never exceed it and
	// only fall short when the pool itself is smaller.
	TestSize int

	// MistakeCap caps the revision slots and the fresh-word slots.
	MistakeCap int

	// GlobalMistakeScope makes mistakes-only rounds rank across every
	// lesson even when the scope names specific ones. Lesson rounds are
	// unaffected: they never contain words outside their own pool.
	GlobalMistakeScope bool
}

// DefaultConfig matches the built-in round shape: up to 5 revision words
// plus up to 5 fresh ones, topped up to a 10-word round from the rest of
// the pool.
func DefaultConfig() Config {
	return Config{TestSize: 10, MistakeCap: 5, GlobalMistakeScope: true}
}

// Mode picks the word pool for a round.
type Mode int

const (
	// ModeLessons draws from explicitly chosen lessons.
	ModeLessons Mode = iota
	// ModeAll draws from every lesson.
	ModeAll
	// ModeMistakes drills only the current top mistakes.
	ModeMistakes
)

// Scope names what a round should cover.
type Scope struct {
	Mode      Mode
	LessonIDs []string
}

// Selector assembles test rounds. The random source is injected so tests
// can seed it.
type Selector struct {
	repo   *lessons.Repository
	ledger *mistakes.Ledger
	cfg    Config
	rng    *rand.Rand
}

// New creates a Selector.
func New(repo *lessons.Repository, ledger *mistakes.Ledger, cfg Config, rng *rand.Rand) *Selector {
	return &Selector{repo: repo, ledger: ledger, cfg: cfg, rng: rng}
}

// Select builds the word list for one round. The top outstanding
// mistakes within the pool come first, then a handful of never-seen
// words, and the remainder is filled at random from the rest of the pool
// until the round reaches min(TestSize, pool size). The combined list is
// uniformly shuffled. Mistake rounds return only the ranked mistakes.
// An empty pool yields an empty round.
func (s *Selector) Select(ctx context.Context, scope Scope) []vocab.Word {
	pool := s.pool(ctx, scope)
	if len(pool) == 0 {
		return nil
	}

	revision := s.ledger.TopMistakes(ctx, pool, s.cfg.MistakeCap)
	if scope.Mode == ModeMistakes {
		return s.shuffled(revision)
	}

	fresh := s.freshWords(ctx, pool, revision)

	combined := append(append([]vocab.Word{}, revision...), fresh...)
	combined = s.fill(combined, pool)
	return s.shuffled(combined)
}

// pool resolves the scope to its word pool. Mistake words are always
// ranked against this pool, so a lesson-scoped round can never pull in
// words from unselected lessons.
func (s *Selector) pool(ctx context.Context, scope Scope) []vocab.Word {
	switch scope.Mode {
	case ModeLessons:
		return s.repo.AllWords(ctx, scope.LessonIDs...)
	case ModeMistakes:
		if !s.cfg.GlobalMistakeScope && len(scope.LessonIDs) > 0 {
			return s.repo.AllWords(ctx, scope.LessonIDs...)
		}
		return s.repo.AllWords(ctx)
	default:
		return s.repo.AllWords(ctx)
	}
}

// freshWords picks up to MistakeCap never-seen pool words at random,
// excluding anything already slotted for revision.
func (s *Selector) freshWords(ctx context.Context, pool, revision []vocab.Word) []vocab.Word {
	seen := s.ledger.SeenIDs(ctx)
	taken := make(map[string]bool, len(revision))
	for _, w := range revision {
		taken[w.ID] = true
	}

	var fresh []vocab.Word
	for _, w := range pool {
		if !seen[w.ID] && !taken[w.ID] {
			fresh = append(fresh, w)
		}
	}
	return s.clamp(s.shuffled(fresh), s.cfg.MistakeCap)
}

// fill tops the round up to min(TestSize, pool size) with a random draw
// from pool words not already selected.
func (s *Selector) fill(selected, pool []vocab.Word) []vocab.Word {
	size := s.cfg.TestSize
	if len(pool) < size {
		size = len(pool)
	}
	if len(selected) >= size {
		return s.clamp(selected, size)
	}

	taken := make(map[string]bool, len(selected))
	for _, w := range selected {
		taken[w.ID] = true
	}
	var rest []vocab.Word
	for _, w := range pool {
		if !taken[w.ID] {
			rest = append(rest, w)
		}
	}
	rest = s.shuffled(rest)

	need := size - len(selected)
	if need > len(rest) {
		need = len(rest)
	}
	return append(selected, rest[:need]...)
}

// shuffled returns a Fisher-Yates shuffled copy.
func (s *Selector) shuffled(words []vocab.Word) []vocab.Word {
	out := make([]vocab.Word, len(words))
	copy(out, words)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (s *Selector) clamp(words []vocab.Word, n int) []vocab.Word {
	if len(words) > n {
		return words[:n]
	}
	return words
}
