package triage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReplyClassifier struct {
	mock.Mock
}

func (m *mockReplyClassifier) ClassifyReplyNeed(ctx context.Context, subject, sender, date, body string) (string, error) {
	args := m.Called(ctx, subject, sender, date, body)
	return args.String(0), args.Error(1)
}

func TestClassify_NoReplySenderSkipsModel(t *testing.T) {
	tests := []struct {
		name   string
		sender string
	}{
		{"plain noreply", "noreply@example.com"},
		{"hyphenated", "no-reply@example.com"},
		{"mixed case", "NoReply@Example.com"},
		{"display name", "GitHub <noreply@github.com>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := new(mockReplyClassifier)
			classifier := &Classifier{llmClient: mockLLM}

			result := classifier.Classify(context.Background(), &gmail.Message{
				ID:     "m1",
				Sender: tt.sender,
			})
			assert.False(t, result.NeedsReply)
			assert.Equal(t, SourceHeuristic, result.Source)
			mockLLM.AssertNotCalled(t, "ClassifyReplyNeed")
		})
	}
}

func TestClassify_ModelAnswer(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		needsReply bool
	}{
		{"plain yes", "Yes", true},
		{"lowercase yes", "yes", true},
		{"padded yes", "  YES \n", true},
		{"plain no", "No", false},
		{"free-form answer", "Yes, this needs a reply", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := new(mockReplyClassifier)
			mockLLM.On("ClassifyReplyNeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.answer, nil)
			classifier := &Classifier{llmClient: mockLLM}

			result := classifier.Classify(context.Background(), &gmail.Message{
				ID:       "m1",
				Sender:   "alice@example.com",
				Subject:  "Question",
				BodyText: "Can you help?",
			})
			assert.Equal(t, tt.needsReply, result.NeedsReply)
			assert.Equal(t, SourceModel, result.Source)
		})
	}
}

func TestClassify_ModelFailureFallsBackToNo(t *testing.T) {
	mockLLM := new(mockReplyClassifier)
	mockLLM.On("ClassifyReplyNeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("api error"))
	classifier := &Classifier{llmClient: mockLLM}

	result := classifier.Classify(context.Background(), &gmail.Message{
		ID:       "m1",
		Sender:   "alice@example.com",
		BodyText: "Can you help?",
	})
	assert.False(t, result.NeedsReply)
	assert.Equal(t, SourceFallback, result.Source)
}

func TestClassify_TruncatesLongBody(t *testing.T) {
	longBody := strings.Repeat("a", 800)

	mockLLM := new(mockReplyClassifier)
	mockLLM.On("ClassifyReplyNeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(body string) bool {
			return len(body) == classifyBodyChars+3 && strings.HasSuffix(body, "...")
		})).Return("No", nil).Once()
	classifier := &Classifier{llmClient: mockLLM}

	classifier.Classify(context.Background(), &gmail.Message{
		ID:         "m1",
		Sender:     "alice@example.com",
		BodyText:   longBody,
		ReceivedAt: time.Now(),
	})
	mockLLM.AssertExpectations(t)
}
