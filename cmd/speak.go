package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinyu/pindrill/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Pronounce text with the configured TTS provider",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		speaker, err := speech.NewSpeaker(ctx, speech.Options{
			Provider: cfg.SpeechProvider,
			Voice:    cfg.SpeechVoice,
		})
		if err != nil {
			return err
		}

		wav, err := speaker.Speak(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}
		return speech.Play(ctx, wav)
	},
}
