package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katakuxiko/abogado-virtual/internal/logging"
	"github.com/katakuxiko/abogado-virtual/internal/model"
	"github.com/katakuxiko/abogado-virtual/internal/util"
)

var (
	// ErrConfiguration means the service cannot reach the model at all (no API key).
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream covers every failure of the model call itself.
	ErrUpstream = errors.New("model processing error")
)

const (
	systemPrompt = "Eres un asistente legal virtual experto en leyes mexicanas. " +
		"Responde de forma clara, precisa y profesional. " +
		"Cuando cites leyes, incluye el nombre, artículo y fracción si aplica. " +
		"Si no tienes suficiente información, indícalo con honestidad. " +
		"Formato de respuesta:\n" +
		"1. Respuesta breve y clara.\n" +
		"2. Fundamento legal (si aplica).\n" +
		"3. Recomendación adicional (si aplica).\n"

	acknowledgment = "Comprendido. Estoy listo para sus consultas."

	TechnicalInstruction = "Responde en lenguaje técnico y jurídico, usando términos legales."
	PlainInstruction     = "Responde en lenguaje claro y sencillo, fácil de entender para cualquier persona."

	technicalStyle = "tecnico"
)

// Backend streams the text of a model reply for a conversation.
// A non-nil error ends the sequence.
type Backend interface {
	Stream(ctx context.Context, modelName string, turns []model.Turn) iter.Seq2[string, error]
}

// Connector builds a Backend for one consultation.
type Connector func(ctx context.Context, apiKey string) (Backend, error)

// LegalAssistant turns a question into an answer from the model.
type LegalAssistant struct {
	apiKey  string
	model   string
	connect Connector
	log     *logrus.Logger
}

func NewLegalAssistant(apiKey, chatModel string, connect Connector) *LegalAssistant {
	return &LegalAssistant{
		apiKey:  strings.TrimSpace(apiKey),
		model:   chatModel,
		connect: connect,
		log:     logging.GetLogger(),
	}
}

// Answer asks the model once and returns every streamed fragment joined in
// arrival order. Nothing is returned on a mid-stream failure.
func (a *LegalAssistant) Answer(ctx context.Context, q model.Question) (model.Answer, error) {
	if a.apiKey == "" {
		a.log.Error("GEMINI_API_KEY is not set")
		return model.Answer{}, fmt.Errorf("%w: api key is empty", ErrConfiguration)
	}

	backend, err := a.connect(ctx, a.apiKey)
	if err != nil {
		a.log.WithError(err).Error("model client init failed")
		return model.Answer{}, fmt.Errorf("%w: client init: %w", ErrUpstream, err)
	}

	var sb strings.Builder
	for fragment, err := range backend.Stream(ctx, a.model, Conversation(q)) {
		if err != nil {
			a.log.WithError(err).WithFields(logrus.Fields{
				"model":    a.model,
				"question": util.Excerpt(q.Text, 80),
				"received": sb.Len(),
			}).Error("model stream failed")
			return model.Answer{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		sb.WriteString(fragment)
	}
	return model.Answer{Text: sb.String()}, nil
}

// RegisterInstruction picks the phrasing directive appended to the question.
func RegisterInstruction(style string) string {
	if strings.EqualFold(style, technicalStyle) {
		return TechnicalInstruction
	}
	return PlainInstruction
}

// Conversation is the fixed three-turn exchange sent for every question.
func Conversation(q model.Question) []model.Turn {
	return []model.Turn{
		{Role: model.RoleUser, Text: systemPrompt},
		{Role: model.RoleModel, Text: acknowledgment},
		{Role: model.RoleUser, Text: q.Text + "\n\n" + RegisterInstruction(q.Style)},
	}
}
