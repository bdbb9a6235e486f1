package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLLMSummarizer struct {
	mock.Mock
}

func (m *mockLLMSummarizer) SummarizeBody(ctx context.Context, body string) (string, error) {
	args := m.Called(ctx, body)
	return args.String(0), args.Error(1)
}

func (m *mockLLMSummarizer) SummarizeAttachment(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

type mockAttachmentFetcher struct {
	mock.Mock
}

func (m *mockAttachmentFetcher) AttachmentData(ctx context.Context, att gmail.Attachment) ([]byte, error) {
	args := m.Called(ctx, att)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockDocConverter struct {
	mock.Mock
}

func (m *mockDocConverter) Convert(data []byte, filename string) (string, error) {
	args := m.Called(data, filename)
	return args.String(0), args.Error(1)
}

func newTestSummarizer(llm llmSummarizer, fetcher attachmentFetcher, converter docConverter) *Summarizer {
	return &Summarizer{llmClient: llm, fetcher: fetcher, converter: converter}
}

func TestSummarize_BodyOnly(t *testing.T) {
	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, "short body").
		Return("A short summary.", nil).Once()

	s := newTestSummarizer(mockLLM, nil, nil)
	result := s.Summarize(context.Background(), &gmail.Message{ID: "m1", BodyText: "short body"})
	assert.Equal(t, "A short summary.", result.Text)
	assert.False(t, result.HadAttachments)
	assert.Empty(t, result.AttachmentErrors)
	mockLLM.AssertExpectations(t)
}

func TestSummarize_EmptyBodySkipsModel(t *testing.T) {
	mockLLM := new(mockLLMSummarizer)

	s := newTestSummarizer(mockLLM, nil, nil)
	result := s.Summarize(context.Background(), &gmail.Message{ID: "m1"})
	assert.Empty(t, result.Text)
	mockLLM.AssertNotCalled(t, "SummarizeBody")
}

func TestSummarize_SnippetFallback(t *testing.T) {
	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, "the snippet").
		Return("Snippet summary.", nil).Once()

	s := newTestSummarizer(mockLLM, nil, nil)
	result := s.Summarize(context.Background(), &gmail.Message{ID: "m1", Snippet: "the snippet"})
	assert.Equal(t, "Snippet summary.", result.Text)
	mockLLM.AssertExpectations(t)
}

func TestSummarize_TruncatesLongBody(t *testing.T) {
	longBody := strings.Repeat("x", 3000)
	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, mock.MatchedBy(func(body string) bool {
		return len(body) == maxBodyChars+3 && strings.HasSuffix(body, "...")
	})).Return("Truncated summary.", nil).Once()

	s := newTestSummarizer(mockLLM, nil, nil)
	s.Summarize(context.Background(), &gmail.Message{ID: "m1", BodyText: longBody})
	mockLLM.AssertExpectations(t)
}

func TestSummarize_BodyErrorRecordedInline(t *testing.T) {
	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, mock.Anything).
		Return("", errors.New("api error"))

	s := newTestSummarizer(mockLLM, nil, nil)
	result := s.Summarize(context.Background(), &gmail.Message{ID: "m1", BodyText: "body"})
	assert.Contains(t, result.Text, "Error summarizing text")
	assert.Contains(t, result.Text, "api error")
}

func TestSummarize_WithAttachments(t *testing.T) {
	att := gmail.Attachment{MessageID: "m1", AttachmentID: "a1", Filename: "report.pdf"}

	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, "body").Return("Body summary.", nil)
	mockLLM.On("SummarizeAttachment", mock.Anything, "extracted text").Return("Attachment summary.", nil)
	mockFetcher := new(mockAttachmentFetcher)
	mockFetcher.On("AttachmentData", mock.Anything, att).Return([]byte("pdf bytes"), nil)
	mockConverter := new(mockDocConverter)
	mockConverter.On("Convert", []byte("pdf bytes"), "report.pdf").Return("extracted text", nil)

	s := newTestSummarizer(mockLLM, mockFetcher, mockConverter)
	result := s.Summarize(context.Background(), &gmail.Message{
		ID:          "m1",
		BodyText:    "body",
		Attachments: []gmail.Attachment{att},
	})

	assert.True(t, result.HadAttachments)
	assert.True(t, strings.HasPrefix(result.Text, "This email contains attachments. "))
	assert.Contains(t, result.Text, "Body summary.")
	assert.Contains(t, result.Text, "Attachments Summary: Attachment summary.")
	assert.Empty(t, result.AttachmentErrors)
}

func TestSummarize_AttachmentFailureDoesNotAbortSiblings(t *testing.T) {
	bad := gmail.Attachment{MessageID: "m1", AttachmentID: "a1", Filename: "broken.docx"}
	good := gmail.Attachment{MessageID: "m1", AttachmentID: "a2", Filename: "notes.txt"}

	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, mock.Anything).Return("Body summary.", nil)
	mockLLM.On("SummarizeAttachment", mock.Anything, "notes text").Return("Notes summary.", nil)
	mockFetcher := new(mockAttachmentFetcher)
	mockFetcher.On("AttachmentData", mock.Anything, bad).Return(nil, errors.New("download failed"))
	mockFetcher.On("AttachmentData", mock.Anything, good).Return([]byte("notes"), nil)
	mockConverter := new(mockDocConverter)
	mockConverter.On("Convert", []byte("notes"), "notes.txt").Return("notes text", nil)

	s := newTestSummarizer(mockLLM, mockFetcher, mockConverter)
	result := s.Summarize(context.Background(), &gmail.Message{
		ID:          "m1",
		BodyText:    "body",
		Attachments: []gmail.Attachment{bad, good},
	})

	assert.Contains(t, result.Text, "Error summarizing attachment broken.docx")
	assert.Contains(t, result.Text, "Notes summary.")
	assert.Len(t, result.AttachmentErrors, 1)
	assert.Contains(t, result.AttachmentErrors[0], "broken.docx")
}

func TestSummarize_ConversionFailureRecorded(t *testing.T) {
	att := gmail.Attachment{MessageID: "m1", AttachmentID: "a1", Filename: "image.png"}

	mockLLM := new(mockLLMSummarizer)
	mockLLM.On("SummarizeBody", mock.Anything, mock.Anything).Return("Body summary.", nil)
	mockFetcher := new(mockAttachmentFetcher)
	mockFetcher.On("AttachmentData", mock.Anything, att).Return([]byte{1, 2, 3}, nil)
	mockConverter := new(mockDocConverter)
	mockConverter.On("Convert", mock.Anything, "image.png").Return("", errors.New("unsupported format"))

	s := newTestSummarizer(mockLLM, mockFetcher, mockConverter)
	result := s.Summarize(context.Background(), &gmail.Message{
		ID:          "m1",
		BodyText:    "body",
		Attachments: []gmail.Attachment{att},
	})

	assert.Contains(t, result.Text, "Error summarizing attachment image.png")
	assert.Contains(t, result.AttachmentErrors[0], "unsupported format")
	mockLLM.AssertNotCalled(t, "SummarizeAttachment")
}
