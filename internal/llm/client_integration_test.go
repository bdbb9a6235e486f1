package llm

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig builds a config from environment variables and skips
// the test when LLM_API_KEY is unset.
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("skipping integration test: set LLM_API_KEY")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &config.LLM{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
	}
}

func TestClassifyReplyNeed_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	answer, err := client.ClassifyReplyNeed(ctx,
		"Can we reschedule tomorrow's meeting?",
		"colleague@example.com",
		"2026-08-29 09:00AM",
		"Hi, something came up and I can't make 10am tomorrow. Could we move our sync to the afternoon? Let me know what works for you.")
	require.NoError(t, err)

	normalized := strings.ToLower(strings.TrimSpace(answer))
	assert.Contains(t, []string{"yes", "no"}, normalized)
	t.Logf("classification answer: %s", answer)
}

func TestScoreImportance_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	answer, err := client.ScoreImportance(ctx,
		"URGENT: production database outage",
		"2026-08-29 09:00AM",
		"The primary database has been down for 20 minutes and customers are affected. We need all hands on deck.")
	require.NoError(t, err)
	require.NotEmpty(t, answer)
	t.Logf("importance answer: %s", answer)
}

func TestSummarizeBody_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := client.SummarizeBody(ctx,
		"Hi team, a quick update on the quarterly report. The finance numbers are in and we beat the forecast by 4%. "+
			"I'll circulate the draft by Wednesday, please send corrections before Friday so we can publish on Monday.")
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	t.Logf("summary: %s", summary)
}
