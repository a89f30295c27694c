package service

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/abogado-virtual/internal/model"
)

// OpenAIBackend talks to any OpenAI-compatible chat endpoint (Gemini's
// OpenAI layer, LM Studio). Search grounding is not available there.
type OpenAIBackend struct {
	client *openai.Client
}

// NewOpenAIConnector creates a go-openai client against baseURL per call.
func NewOpenAIConnector(baseURL string) Connector {
	return func(_ context.Context, apiKey string) (Backend, error) {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		return &OpenAIBackend{client: openai.NewClientWithConfig(cfg)}, nil
	}
}

func (o *OpenAIBackend) Stream(ctx context.Context, modelName string, turns []model.Turn) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stream, err := o.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:    modelName,
			Messages: openAIMessages(turns),
			Stream:   true,
		})
		if err != nil {
			yield("", err)
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			if !yield(resp.Choices[0].Delta.Content, nil) {
				return
			}
		}
	}
}

func openAIMessages(turns []model.Turn) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		role := openai.ChatMessageRoleUser
		if t.Role == model.RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: t.Text})
	}
	return out
}
