package speech

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrBusy means a pronunciation is already playing; the request is
// dropped rather than queued.
var ErrBusy = errors.New("speech already in progress")

// playFunc is swapped out in tests.
type playFunc func(ctx context.Context, wav []byte) error

// Dispatcher serializes speech: at most one synthesis-and-playback runs
// at a time, and further requests are rejected until it finishes. This
// stops a mashed speak key from stacking overlapping audio.
type Dispatcher struct {
	speaker Speaker
	play    playFunc
	busy    atomic.Bool
}

// NewDispatcher wraps speaker with single-flight playback.
func NewDispatcher(speaker Speaker) *Dispatcher {
	return &Dispatcher{speaker: speaker, play: Play}
}

// Enabled reports whether a provider is configured.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.speaker != nil
}

// Speak synthesizes and plays text, blocking until playback finishes.
// Returns ErrBusy while a previous call is still running and
// ErrNoProvider when disabled.
func (d *Dispatcher) Speak(ctx context.Context, text string) error {
	if !d.Enabled() {
		return ErrNoProvider
	}
	if !d.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer d.busy.Store(false)

	wav, err := d.speaker.Speak(ctx, text)
	if err != nil {
		return err
	}
	return d.play(ctx, wav)
}
