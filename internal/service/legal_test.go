package service

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakuxiko/abogado-virtual/internal/model"
)

// fakeBackend replays fragments and optionally fails after them.
type fakeBackend struct {
	fragments []string
	failAfter error

	gotModel string
	gotTurns []model.Turn
}

func (f *fakeBackend) Stream(_ context.Context, modelName string, turns []model.Turn) iter.Seq2[string, error] {
	f.gotModel = modelName
	f.gotTurns = turns
	return func(yield func(string, error) bool) {
		for _, s := range f.fragments {
			if !yield(s, nil) {
				return
			}
		}
		if f.failAfter != nil {
			yield("", f.failAfter)
		}
	}
}

type countingConnector struct {
	backend Backend
	err     error
	calls   int
	gotKey  string
}

func (c *countingConnector) connect(_ context.Context, apiKey string) (Backend, error) {
	c.calls++
	c.gotKey = apiKey
	if c.err != nil {
		return nil, c.err
	}
	return c.backend, nil
}

func TestAnswer_AggregatesInOrder(t *testing.T) {
	fb := &fakeBackend{fragments: []string{"Hola", " mundo"}}
	conn := &countingConnector{backend: fb}
	a := NewLegalAssistant("key", "gemini-2.5-flash", conn.connect)

	ans, err := a.Answer(context.Background(), model.Question{Text: "¿Qué es un amparo?", Style: "normal"})

	require.NoError(t, err)
	assert.Equal(t, "Hola mundo", ans.Text)
	assert.Equal(t, "gemini-2.5-flash", fb.gotModel)
	assert.Equal(t, "key", conn.gotKey)
	assert.Equal(t, 1, conn.calls)
}

func TestAnswer_KeepsFragmentsVerbatim(t *testing.T) {
	fb := &fakeBackend{fragments: []string{"  a", "", "a", "a\n", " "}}
	a := NewLegalAssistant("key", "m", (&countingConnector{backend: fb}).connect)

	ans, err := a.Answer(context.Background(), model.Question{Text: "q"})

	require.NoError(t, err)
	assert.Equal(t, "  aaa\n ", ans.Text)
}

func TestAnswer_MissingKeyNeverConnects(t *testing.T) {
	for _, key := range []string{"", "   "} {
		conn := &countingConnector{backend: &fakeBackend{fragments: []string{"x"}}}
		a := NewLegalAssistant(key, "m", conn.connect)

		_, err := a.Answer(context.Background(), model.Question{Text: "q"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Zero(t, conn.calls)
	}
}

func TestAnswer_MidStreamFailureDropsPartialText(t *testing.T) {
	boom := errors.New("connection reset")
	fb := &fakeBackend{fragments: []string{"Según el artículo"}, failAfter: boom}
	a := NewLegalAssistant("key", "m", (&countingConnector{backend: fb}).connect)

	ans, err := a.Answer(context.Background(), model.Question{Text: "q"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, ans.Text)
}

func TestAnswer_ConnectFailureIsUpstream(t *testing.T) {
	conn := &countingConnector{err: errors.New("bad credentials")}
	a := NewLegalAssistant("key", "m", conn.connect)

	_, err := a.Answer(context.Background(), model.Question{Text: "q"})

	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrConfiguration)
}

func TestRegisterInstruction(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"tecnico", TechnicalInstruction},
		{"TECNICO", TechnicalInstruction},
		{"Tecnico", TechnicalInstruction},
		{"normal", PlainInstruction},
		{"", PlainInstruction},
		{"técnico", PlainInstruction},
		{" tecnico", PlainInstruction},
		{"formal", PlainInstruction},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.want, RegisterInstruction(tt.style))
		})
	}
}

func TestConversation_Shape(t *testing.T) {
	turns := Conversation(model.Question{Text: "¿Cuánto dura el aguinaldo?", Style: "TeCnIcO"})

	require.Len(t, turns, 3)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Contains(t, turns[0].Text, "leyes mexicanas")
	assert.Contains(t, turns[0].Text, "2. Fundamento legal (si aplica).")
	assert.Equal(t, model.RoleModel, turns[1].Role)
	assert.Equal(t, "Comprendido. Estoy listo para sus consultas.", turns[1].Text)
	assert.Equal(t, model.RoleUser, turns[2].Role)
	assert.Equal(t, "¿Cuánto dura el aguinaldo?\n\n"+TechnicalInstruction, turns[2].Text)
}

func TestAnswer_SendsConversation(t *testing.T) {
	fb := &fakeBackend{fragments: []string{"ok"}}
	a := NewLegalAssistant("key", "m", (&countingConnector{backend: fb}).connect)

	_, err := a.Answer(context.Background(), model.Question{Text: "Despido injustificado", Style: "normal"})

	require.NoError(t, err)
	require.Len(t, fb.gotTurns, 3)
	assert.True(t, strings.HasSuffix(fb.gotTurns[2].Text, "\n\n"+PlainInstruction))
}
