package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// openAIClientInterface narrows the OpenAI client so tests can inject a mock.
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	config       *config.LLM
	openaiClient openAIClientInterface
	limiter      *rate.Limiter
	retryTimes   int
}

// NewClient creates an LLM client. transport may be nil; when set (SOCKS5
// proxy) it is used for all API calls.
func NewClient(cfg *config.LLM, transport *http.Transport) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}

	ratePerSecond := cfg.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	retryTimes := cfg.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 2
	}

	return &Client{
		config:       cfg,
		openaiClient: openai.NewClientWithConfig(openaiConfig),
		limiter:      rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		retryTimes:   retryTimes,
	}
}

// callTimeout returns the per-call timeout: the configured value when set,
// otherwise the shape default.
func (c *Client) callTimeout(defaultSeconds int) time.Duration {
	if c.config.TimeoutSeconds > 0 {
		return time.Duration(c.config.TimeoutSeconds) * time.Second
	}
	return time.Duration(defaultSeconds) * time.Second
}

// complete performs one chat completion through the shared rate limiter.
// Transport-level failures are retried up to retryTimes; a well-formed answer
// is never retried.
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int, timeout time.Duration) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= c.retryTimes+1; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("waiting for rate limiter: %w", err)
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := c.openaiClient.CreateChatCompletion(callCtx, req)
		cancel()
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return "", fmt.Errorf("LLM call cancelled: %w", ctx.Err())
			}
			logger.Warnf("[LLM] API call failed (attempt %d/%d): %v", attempt, c.retryTimes+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("LLM API returned no choices")
		}

		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content), nil
	}

	return "", fmt.Errorf("LLM API call failed after %d attempts: %w", c.retryTimes+1, lastErr)
}

// ClassifyReplyNeed asks whether the email requires a reply. The raw answer
// is returned; the caller normalizes it.
func (c *Client) ClassifyReplyNeed(ctx context.Context, subject, sender, date, body string) (string, error) {
	systemPrompt := "You are an intelligent email assistant that determines whether an email requires a reply. " +
		"Make sure you consider the email's content, tone, and sender details. Answer 'Yes' only when it is truly necessary. " +
		"Return only 'Yes' or 'No'."
	userPrompt := fmt.Sprintf("Email subject: %s\nEmail sender: %s\nEmail received on: %s\nEmail body: %s",
		subject, sender, date, body)
	return c.complete(ctx, systemPrompt, userPrompt, 0, 50, c.callTimeout(60))
}

// ScoreImportance asks for a 1-10 urgency/importance score. The raw answer is
// returned; the caller parses the number.
func (c *Client) ScoreImportance(ctx context.Context, subject, date, body string) (string, error) {
	systemPrompt := "You are an intelligent email assistant specialized in evaluating email urgency and importance. " +
		"Score the following email on a scale from 1 to 10, where 10 means extremely important and urgent, and 1 means not important at all. " +
		"Return only a single numerical score with no additional text."
	userPrompt := fmt.Sprintf("Email subject: %s\nEmail received on: %s\nEmail body: %s", subject, date, body)
	return c.complete(ctx, systemPrompt, userPrompt, 0, 50, c.callTimeout(60))
}

// SummarizeBody produces a 2-3 line English summary of the email body.
func (c *Client) SummarizeBody(ctx context.Context, body string) (string, error) {
	systemPrompt := "You are a professional email assistant. Summarize the following email content concisely in 2-3 lines in English only. " +
		"Return only the summary."
	userPrompt := "Email Content:\n" + body
	return c.complete(ctx, systemPrompt, userPrompt, 0.7, 75, c.callTimeout(30))
}

// SummarizeAttachment produces a single-paragraph summary of extracted
// attachment text, without lists or breakdowns.
func (c *Client) SummarizeAttachment(ctx context.Context, text string) (string, error) {
	systemPrompt := "You are a highly accurate and detail-oriented summarization assistant."
	userPrompt := "Please provide a concise summary of the following attachment content as a single paragraph. " +
		"Make it as concise as possible and avoid detailed breakdowns yet give an overview of the attachment. " +
		"Do not include any bullet points, lists, or detailed breakdowns. " +
		"Only summarize the overall content.\n\n" + text
	return c.complete(ctx, systemPrompt, userPrompt, 0, 300, c.callTimeout(60))
}

// DraftReply generates an original, courteous reply to the given email on
// behalf of the account owner.
func (c *Client) DraftReply(ctx context.Context, subject, sender, date, body string) (string, error) {
	systemPrompt := "You are the account owner's professional email assistant. Your task is to draft a reply email on their behalf " +
		"based on the email details provided. Do not simply repeat the original email. Instead, craft a personalized, " +
		"clear, and courteous reply that acknowledges the sender's message, addresses key points, and ends with an appropriate sign-off. " +
		"Return only the text of the reply email draft."
	userPrompt := fmt.Sprintf("Email Details:\nSubject: %s\nFrom: %s\nDate: %s\nEmail Body:\n%s",
		subject, sender, date, body)
	return c.complete(ctx, systemPrompt, userPrompt, 0.7, 300, c.callTimeout(60))
}
