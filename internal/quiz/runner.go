// Package quiz holds the test round state machine. It is pure: the
// session screen drives it and owns all timing and persistence.
package quiz

import (
	"strings"

	"github.com/jinyu/pindrill/internal/vocab"
)

// Phase is the runner's current state.
type Phase int

const (
	// PhaseAnswering waits for the learner's pinyin input.
	PhaseAnswering Phase = iota
	// PhaseFeedback shows whether the last answer was right.
	PhaseFeedback
	// PhaseComplete means the round is over.
	PhaseComplete
)

// Runner walks a word list one answer at a time. Each word passes
// through Answering then Feedback; after the last word the runner is
// Complete and the results are final.
type Runner struct {
	words    []vocab.Word
	idx      int
	phase    Phase
	results  []vocab.TestResult
	canceled bool
}

// NewRunner starts a round over words. An empty list is a round that is
// already complete.
func NewRunner(words []vocab.Word) *Runner {
	r := &Runner{words: words}
	if len(words) == 0 {
		r.phase = PhaseComplete
	}
	return r
}

// Phase returns the current phase.
func (r *Runner) Phase() Phase { return r.phase }

// Current returns the word being asked. ok is false once the round is
// complete.
func (r *Runner) Current() (vocab.Word, bool) {
	if r.idx >= len(r.words) {
		return vocab.Word{}, false
	}
	return r.words[r.idx], true
}

// Index returns the zero-based position of the current word.
func (r *Runner) Index() int { return r.idx }

// Total returns the number of words in the round.
func (r *Runner) Total() int { return len(r.words) }

// Submit grades the learner's input against the current word. Blank
// input and submissions outside the Answering phase are ignored, so a
// double press of enter during feedback cannot skip a word. Comparison
// is case-insensitive with whitespace collapsed.
func (r *Runner) Submit(input string) (correct bool, ok bool) {
	if r.phase != PhaseAnswering {
		return false, false
	}
	if strings.TrimSpace(input) == "" {
		return false, false
	}

	w := r.words[r.idx]
	correct = vocab.PinyinEqual(input, w.Pinyin)
	r.results = append(r.results, vocab.TestResult{
		Word:      w,
		UserInput: strings.TrimSpace(input),
		Correct:   correct,
	})
	r.phase = PhaseFeedback
	return correct, true
}

// Advance moves past the feedback to the next word, or completes the
// round after the last one. It is a no-op outside the Feedback phase.
func (r *Runner) Advance() {
	if r.phase != PhaseFeedback {
		return
	}
	r.idx++
	if r.idx >= len(r.words) {
		r.phase = PhaseComplete
		return
	}
	r.phase = PhaseAnswering
}

// Cancel abandons the round. Partial results are discarded and the
// runner reports complete.
func (r *Runner) Cancel() {
	r.canceled = true
	r.results = nil
	r.phase = PhaseComplete
}

// Canceled reports whether the round was abandoned.
func (r *Runner) Canceled() bool { return r.canceled }

// Results returns the graded answers so far. After Cancel it is empty.
func (r *Runner) Results() []vocab.TestResult { return r.results }

// CorrectCount returns how many answers were right.
func (r *Runner) CorrectCount() int {
	n := 0
	for _, res := range r.results {
		if res.Correct {
			n++
		}
	}
	return n
}

// LastResult returns the most recent graded answer, for the feedback
// view. ok is false before the first submission.
func (r *Runner) LastResult() (vocab.TestResult, bool) {
	if len(r.results) == 0 {
		return vocab.TestResult{}, false
	}
	return r.results[len(r.results)-1], true
}
