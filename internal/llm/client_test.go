package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/time/rate"
)

type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient injects the mock and removes rate-limiter delays.
func newTestClient(cfg *config.LLM, mockClient openAIClientInterface) *Client {
	return &Client{
		config:       cfg,
		openaiClient: mockClient,
		limiter:      rate.NewLimiter(rate.Inf, 0),
		retryTimes:   2,
	}
}

func textResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestComplete_RetriesTransportErrors(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("connection reset")).Twice()
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(textResponse("Yes"), nil).Once()

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	answer, err := client.ClassifyReplyNeed(context.Background(), "Subject", "a@b.com", "2026-08-29 10:00AM", "body")
	assert.NoError(t, err)
	assert.Equal(t, "Yes", answer)
	mockAPI.AssertExpectations(t)
}

func TestComplete_ExhaustsRetries(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("api error"))

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	_, err := client.ScoreImportance(context.Background(), "Subject", "2026-08-29 10:00AM", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	mockAPI.AssertNumberOfCalls(t, "CreateChatCompletion", 3)
}

func TestComplete_NoChoicesNotRetried(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{Choices: nil}, nil)

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	_, err := client.SummarizeBody(context.Background(), "some body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
	mockAPI.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
}

func TestComplete_TrimsCodeFences(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(textResponse("```json\n{\"answer\": \"yes\"}\n```"), nil)

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	answer, err := client.SummarizeAttachment(context.Background(), "attachment text")
	assert.NoError(t, err)
	assert.Equal(t, "{\"answer\": \"yes\"}", answer)
}

func TestClassifyReplyNeed_RequestShape(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Temperature == 0 &&
			req.MaxTokens == 50 &&
			strings.Contains(req.Messages[1].Content, "Email subject: Project update") &&
			strings.Contains(req.Messages[1].Content, "Email sender: alice@example.com")
	})).Return(textResponse("No"), nil).Once()

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	answer, err := client.ClassifyReplyNeed(context.Background(), "Project update", "alice@example.com", "2026-08-29 10:00AM", "body")
	assert.NoError(t, err)
	assert.Equal(t, "No", answer)
	mockAPI.AssertExpectations(t)
}

func TestDraftReply_RequestShape(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Temperature == 0.7 &&
			req.MaxTokens == 300 &&
			strings.Contains(req.Messages[1].Content, "Subject: Lunch on Friday?") &&
			strings.Contains(req.Messages[1].Content, "From: bob@example.com")
	})).Return(textResponse("Hi Bob, Friday works for me."), nil).Once()

	client := newTestClient(&config.LLM{Model: "test"}, mockAPI)
	reply, err := client.DraftReply(context.Background(), "Lunch on Friday?", "bob@example.com", "2026-08-29 10:00AM", "Are you free?")
	assert.NoError(t, err)
	assert.Equal(t, "Hi Bob, Friday works for me.", reply)
	mockAPI.AssertExpectations(t)
}

func TestCallTimeout(t *testing.T) {
	client := newTestClient(&config.LLM{Model: "test"}, &mockOpenAIClient{})
	assert.Equal(t, "1m0s", client.callTimeout(60).String())

	client = newTestClient(&config.LLM{Model: "test", TimeoutSeconds: 5}, &mockOpenAIClient{})
	assert.Equal(t, "5s", client.callTimeout(60).String())
}
