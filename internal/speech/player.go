package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// playerCandidates in preference order; the first one on PATH wins.
var playerCandidates = []string{"afplay", "paplay", "aplay", "ffplay"}

// findPlayer locates an audio player binary on PATH.
func findPlayer() (string, error) {
	for _, name := range playerCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no audio player found (looked for %v)", playerCandidates)
}

// Play writes wav to a temp file and plays it with the system player,
// blocking until playback ends or ctx is canceled.
func Play(ctx context.Context, wav []byte) error {
	player, err := findPlayer()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "pindrill-*.wav")
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(wav); err != nil {
		f.Close()
		return fmt.Errorf("write temp audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp audio file: %w", err)
	}

	args := []string{f.Name()}
	if filepath.Base(player) == "ffplay" {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", f.Name()}
	}

	cmd := exec.CommandContext(ctx, player, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}
