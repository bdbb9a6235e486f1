package draft

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReplyDrafter struct {
	mock.Mock
}

func (m *mockReplyDrafter) DraftReply(ctx context.Context, subject, sender, date, body string) (string, error) {
	args := m.Called(ctx, subject, sender, date, body)
	return args.String(0), args.Error(1)
}

type mockDraftSaver struct {
	mock.Mock
}

func (m *mockDraftSaver) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	args := m.Called(ctx, to, subject, body)
	return args.String(0), args.Error(1)
}

type mockDraftStore struct {
	mock.Mock
}

func (m *mockDraftStore) SaveGenerated(ctx context.Context, messageID, recipient, subject, content string) (int, error) {
	args := m.Called(ctx, messageID, recipient, subject, content)
	return args.Int(0), args.Error(1)
}

func (m *mockDraftStore) MarkSaved(ctx context.Context, id int, draftID string) error {
	args := m.Called(ctx, id, draftID)
	return args.Error(0)
}

func (m *mockDraftStore) MarkFailed(ctx context.Context, id int, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func testIncoming() *gmail.Message {
	return &gmail.Message{
		ID:         "m1",
		Sender:     "alice@example.com",
		Subject:    "Meeting tomorrow",
		BodyText:   "Can we meet at 10am?",
		ReceivedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local),
	}
}

func TestReplySubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{"plain subject", "Meeting tomorrow", "Re: Meeting tomorrow"},
		{"already prefixed", "Re: Meeting tomorrow", "Re: Meeting tomorrow"},
		{"uppercase prefix", "RE: Meeting tomorrow", "RE: Meeting tomorrow"},
		{"lowercase prefix", "re: meeting", "re: meeting"},
		{"empty subject", "", "Re: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplySubject(tt.subject))
		})
	}
}

func TestComposeAndSave_Success(t *testing.T) {
	mockLLM := new(mockReplyDrafter)
	mockLLM.On("DraftReply", mock.Anything, "Meeting tomorrow", "alice@example.com", mock.Anything, "Can we meet at 10am?").
		Return("Hi Alice, 10am works for me.", nil).Once()
	mockSaver := new(mockDraftSaver)
	mockSaver.On("CreateDraft", mock.Anything, "alice@example.com", "Re: Meeting tomorrow", "Hi Alice, 10am works for me.").
		Return("d1", nil).Once()
	mockStore := new(mockDraftStore)
	mockStore.On("SaveGenerated", mock.Anything, "m1", "alice@example.com", "Re: Meeting tomorrow", "Hi Alice, 10am works for me.").
		Return(7, nil).Once()
	mockStore.On("MarkSaved", mock.Anything, 7, "d1").Return(nil).Once()

	c := &Composer{llmClient: mockLLM, saver: mockSaver, store: mockStore}
	text, err := c.ComposeAndSave(context.Background(), testIncoming())
	require.NoError(t, err)
	assert.Equal(t, "Hi Alice, 10am works for me.", text)
	mockLLM.AssertExpectations(t)
	mockSaver.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestComposeAndSave_GenerationFailureShortCircuits(t *testing.T) {
	mockLLM := new(mockReplyDrafter)
	mockLLM.On("DraftReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("api error"))
	mockSaver := new(mockDraftSaver)

	c := &Composer{llmClient: mockLLM, saver: mockSaver}
	text, err := c.ComposeAndSave(context.Background(), testIncoming())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Empty(t, text)
	mockSaver.AssertNotCalled(t, "CreateDraft")
}

func TestComposeAndSave_EmptyGenerationIsFailure(t *testing.T) {
	mockLLM := new(mockReplyDrafter)
	mockLLM.On("DraftReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("  \n ", nil)
	mockSaver := new(mockDraftSaver)

	c := &Composer{llmClient: mockLLM, saver: mockSaver}
	_, err := c.ComposeAndSave(context.Background(), testIncoming())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	mockSaver.AssertNotCalled(t, "CreateDraft")
}

func TestComposeAndSave_SaveFailurePreservesText(t *testing.T) {
	mockLLM := new(mockReplyDrafter)
	mockLLM.On("DraftReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("Hi Alice, 10am works for me.", nil)
	mockSaver := new(mockDraftSaver)
	mockSaver.On("CreateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))
	mockStore := new(mockDraftStore)
	mockStore.On("SaveGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(7, nil)
	mockStore.On("MarkFailed", mock.Anything, 7, mock.Anything).Return(nil).Once()

	c := &Composer{llmClient: mockLLM, saver: mockSaver, store: mockStore}
	text, err := c.ComposeAndSave(context.Background(), testIncoming())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSave))
	assert.Equal(t, "Hi Alice, 10am works for me.", text)
	mockStore.AssertExpectations(t)
}

func TestComposeAndSave_TruncatesLongBody(t *testing.T) {
	msg := testIncoming()
	msg.BodyText = strings.Repeat("x", 1500)

	mockLLM := new(mockReplyDrafter)
	mockLLM.On("DraftReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(body string) bool {
			return len(body) == draftBodyChars+3 && strings.HasSuffix(body, "...")
		})).Return("reply", nil).Once()
	mockSaver := new(mockDraftSaver)
	mockSaver.On("CreateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("d1", nil)

	c := &Composer{llmClient: mockLLM, saver: mockSaver}
	_, err := c.ComposeAndSave(context.Background(), msg)
	require.NoError(t, err)
	mockLLM.AssertExpectations(t)
}
