package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockImportanceScorer struct {
	mock.Mock
}

func (m *mockImportanceScorer) ScoreImportance(ctx context.Context, subject, date, body string) (string, error) {
	args := m.Called(ctx, subject, date, body)
	return args.String(0), args.Error(1)
}

func TestScore_ParsesModelAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   float64
		source ScoreSource
	}{
		{"bare integer", "7", 7, ScoreSourceModel},
		{"bare decimal", "8.5", 8.5, ScoreSourceModel},
		{"embedded in prose", "I'd say around 7.5 out of 10", 7.5, ScoreSourceModel},
		{"padded", "  9 \n", 9, ScoreSourceModel},
		{"out of range accepted verbatim", "12", 12, ScoreSourceModel},
		{"no number", "high priority", 0, ScoreSourceFallback},
		{"empty answer", "", 0, ScoreSourceFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := new(mockImportanceScorer)
			mockLLM.On("ScoreImportance", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.answer, nil)
			scorer := &Scorer{llmClient: mockLLM}

			result := scorer.Score(context.Background(), &gmail.Message{ID: "m1", Subject: "s", BodyText: "b"})
			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.source, result.Source)
		})
	}
}

func TestScore_ModelFailureFallsBackToZero(t *testing.T) {
	mockLLM := new(mockImportanceScorer)
	mockLLM.On("ScoreImportance", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("api error"))
	scorer := &Scorer{llmClient: mockLLM}

	result := scorer.Score(context.Background(), &gmail.Message{ID: "m1"})
	assert.Equal(t, 0.0, result.Value)
	assert.Equal(t, ScoreSourceFallback, result.Source)
}

func TestParseScore(t *testing.T) {
	value, ok := parseScore("score: 3.25/10")
	assert.True(t, ok)
	assert.Equal(t, 3.25, value)

	_, ok = parseScore("no digits here")
	assert.False(t, ok)
}
