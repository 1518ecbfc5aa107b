package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// openaiVoices are the voices the speech endpoint accepts.
var openaiVoices = map[string]openai.SpeechVoice{
	"alloy":   openai.VoiceAlloy,
	"echo":    openai.VoiceEcho,
	"fable":   openai.VoiceFable,
	"onyx":    openai.VoiceOnyx,
	"nova":    openai.VoiceNova,
	"shimmer": openai.VoiceShimmer,
}

// OpenAISpeaker synthesizes speech with the OpenAI TTS endpoint, which
// returns ready-to-play WAV.
type OpenAISpeaker struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

// NewOpenAISpeaker creates an OpenAI-backed Speaker. Unknown voice names
// fall back to alloy.
func NewOpenAISpeaker(apiKey, voice string) *OpenAISpeaker {
	v, ok := openaiVoices[voice]
	if !ok {
		v = openai.VoiceAlloy
	}
	return &OpenAISpeaker{
		client: openai.NewClient(apiKey),
		voice:  v,
	}
}

func (s *OpenAISpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("openai tts: %w", err)
	}
	defer resp.Close()

	wav, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai tts: read audio: %w", err)
	}
	return wav, nil
}
