package rewards

import (
	"context"
	"time"

	"github.com/jinyu/pindrill/internal/store"
	"github.com/jinyu/pindrill/internal/vocab"
)

// historyCap bounds the stored score list; older entries fall off.
const historyCap = 10

// History persists recent test scores, newest first.
type History struct {
	kv store.KV
}

// NewHistory creates a History backed by kv.
func NewHistory(kv store.KV) *History {
	return &History{kv: kv}
}

// Add prepends a score for a finished round.
func (h *History) Add(ctx context.Context, when time.Time, score, total int, lessonNames []string) {
	entry := vocab.HistoricalScore{
		Date:        when.Format("2006-01-02"),
		Score:       score,
		Total:       total,
		LessonNames: lessonNames,
	}
	all := append([]vocab.HistoricalScore{entry}, h.List(ctx)...)
	if len(all) > historyCap {
		all = all[:historyCap]
	}
	store.Save(ctx, h.kv, store.KeyHistory, all)
}

// List returns stored scores, newest first.
func (h *History) List(ctx context.Context) []vocab.HistoricalScore {
	return store.Load(ctx, h.kv, store.KeyHistory, []vocab.HistoricalScore{})
}
