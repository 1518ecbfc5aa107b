// Package speech provides text-to-speech pronunciation for test words.
// Providers return WAV audio; playback shells out to the system player.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Speaker synthesizes spoken audio for a word or phrase.
type Speaker interface {
	// Speak returns WAV audio for text.
	Speak(ctx context.Context, text string) ([]byte, error)
}

// ErrNoProvider means no TTS provider is configured; the feature is
// simply off.
var ErrNoProvider = errors.New("no text-to-speech provider configured")

// Options selects and tunes the provider.
type Options struct {
	// Provider is "gemini", "openai", or "auto" to pick from available
	// API keys.
	Provider string

	// Voice is the provider voice name.
	Voice string
}

// NewSpeaker creates a Speaker from options and API keys in the
// environment. With provider "auto", Gemini wins when both keys are
// set. ErrNoProvider when nothing is configured.
func NewSpeaker(ctx context.Context, opts Options) (Speaker, error) {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	switch opts.Provider {
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("gemini provider selected but GEMINI_API_KEY is not set")
		}
		return NewGeminiSpeaker(ctx, geminiKey, opts.Voice)
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is not set")
		}
		return NewOpenAISpeaker(openaiKey, opts.Voice), nil
	case "", "auto":
		if geminiKey != "" {
			return NewGeminiSpeaker(ctx, geminiKey, opts.Voice)
		}
		if openaiKey != "" {
			return NewOpenAISpeaker(openaiKey, opts.Voice), nil
		}
		return nil, ErrNoProvider
	default:
		return nil, fmt.Errorf("unknown speech provider: %q", opts.Provider)
	}
}
