package speech

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiTTSModel streams raw 24kHz 16-bit mono PCM.
const geminiTTSModel = "gemini-2.5-flash-preview-tts"

const (
	geminiSampleRate = 24000
	geminiChannels   = 1
	geminiBitDepth   = 16
)

// GeminiSpeaker synthesizes speech with the Gemini TTS model.
type GeminiSpeaker struct {
	client *genai.Client
	voice  string
}

// NewGeminiSpeaker creates a Gemini-backed Speaker.
func NewGeminiSpeaker(ctx context.Context, apiKey, voice string) (*GeminiSpeaker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	if voice == "" {
		voice = "Kore"
	}
	return &GeminiSpeaker{client: client, voice: voice}, nil
}

func (s *GeminiSpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: "Please say this: " + text}},
	}}

	result, err := s.client.Models.GenerateContent(ctx, geminiTTSModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini tts: %w", err)
	}

	pcm := extractInlineAudio(result)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("gemini tts: no audio data in response")
	}
	return WrapPCM(pcm, geminiSampleRate, geminiChannels, geminiBitDepth), nil
}

func extractInlineAudio(result *genai.GenerateContentResponse) []byte {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
