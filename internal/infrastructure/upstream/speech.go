package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

const speechModel = "eleven_multilingual_v2"

// Voices maps assistant languages to ElevenLabs voice ids.
var Voices = map[string]string{
	"en": "9BWtsMINqrJLrRacOk9x",
	"hi": "pNInz6obpgDQGcFmaJgB",
	"bn": "EXAVITQu4vr4xnSDxMaL",
}

// ElevenLabs synthesises speech with the multilingual model.
type ElevenLabs struct {
	client  *Client
	baseURL string
	apiKey  string
}

func NewElevenLabs(client *Client, baseURL, apiKey string) *ElevenLabs {
	return &ElevenLabs{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// VoiceFor returns the voice for language, falling back to English.
func VoiceFor(language string) string {
	if v, ok := Voices[language]; ok {
		return v
	}
	return Voices["en"]
}

func (e *ElevenLabs) Synthesize(ctx context.Context, text, language string) (*domain.Speech, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", domain.FeatureSpeech, ErrNotConfigured)
	}

	payload, err := json.Marshal(speechRequest{
		Text:          text,
		ModelID:       speechModel,
		VoiceSettings: voiceSettings{Stability: 0.5, SimilarityBoost: 0.5},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", domain.FeatureSpeech, err)
	}

	endpoint := e.baseURL + "/text-to-speech/" + VoiceFor(language)
	audio, contentType, err := e.client.do(ctx, domain.FeatureSpeech, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "audio/mpeg")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("xi-api-key", e.apiKey)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%s: empty audio", domain.FeatureSpeech)
	}
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return &domain.Speech{ContentType: contentType, Audio: audio}, nil
}
