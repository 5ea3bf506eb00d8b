package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// Gemini implements text generation on the generateContent endpoint.
type Gemini struct {
	client  *Client
	baseURL string
	apiKey  string
	model   string
	feature string
}

func NewGemini(client *Client, baseURL, apiKey, model string) *Gemini {
	return &Gemini{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		feature: domain.FeatureChat,
	}
}

// ForFeature returns a copy that labels its calls with feature.
func (g *Gemini) ForFeature(feature string) *Gemini {
	cp := *g
	cp.feature = feature
	return &cp
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%s: %w", g.feature, ErrNotConfigured)
	}

	// The key travels in a header so it never shows up in logged URLs.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	header := http.Header{}
	header.Set("x-goog-api-key", g.apiKey)
	req := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}

	var resp geminiResponse
	if err := g.client.postJSON(ctx, g.feature, endpoint, header, req, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%s: gemini api error: %s", g.feature, resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 || resp.Candidates[0].Content.Parts[0].Text == "" {
		return "", errors.New(g.feature + ": gemini empty response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
