package service

import (
	"context"
	"iter"
	"net/http"

	"google.golang.org/genai"

	"github.com/katakuxiko/abogado-virtual/internal/model"
)

// GeminiBackend streams answers from the Gemini API with Google Search
// grounding and an unbounded thinking budget.
type GeminiBackend struct {
	client *genai.Client
}

// GeminiOptions are only set by tests, to point the client at a fake server.
type GeminiOptions struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiConnector returns a Connector that creates a fresh genai client per call.
func NewGeminiConnector(opts GeminiOptions) Connector {
	return func(ctx context.Context, apiKey string) (Backend, error) {
		cc := &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: opts.HTTPClient,
		}
		if opts.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
		}
		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			return nil, err
		}
		return &GeminiBackend{client: client}, nil
	}
}

func (g *GeminiBackend) Stream(ctx context.Context, modelName string, turns []model.Turn) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stream := g.client.Models.GenerateContentStream(ctx, modelName, geminiContents(turns), geminiConfig())
		for chunk, err := range stream {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(chunk.Text(), nil) {
				return
			}
		}
	}
}

func geminiContents(turns []model.Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == model.RoleModel {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(t.Text, role))
	}
	return out
}

func geminiConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](-1)},
		Tools:          []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
}
