package triage

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/llm"
	"github.com/fachebot/inbox-hero/internal/logger"
)

// scoreBodyChars bounds the body text sent to the model for scoring.
const scoreBodyChars = 500

// scorePattern matches the first decimal number anywhere in the response.
var scorePattern = regexp.MustCompile(`\d+(\.\d+)?`)

// importanceScorer is the LLM surface used by the scorer (mockable in tests).
type importanceScorer interface {
	ScoreImportance(ctx context.Context, subject, date, body string) (string, error)
}

type Scorer struct {
	llmClient importanceScorer
}

func NewScorer(llmClient *llm.Client) *Scorer {
	return &Scorer{llmClient: llmClient}
}

// Score asks the model for a 1-10 importance score. The response only needs
// to contain a decimal number somewhere; a response without one, or a failed
// call, falls back to 0.0.
func (s *Scorer) Score(ctx context.Context, msg *gmail.Message) ScoreResult {
	body := msg.Body()
	if len(body) > scoreBodyChars {
		body = body[:scoreBodyChars] + "..."
	}

	answer, err := s.llmClient.ScoreImportance(ctx, msg.Subject, formatDate(msg.ReceivedAt), body)
	if err != nil {
		logger.Errorf("[Triage] importance scoring failed for message %s: %v", msg.ID, err)
		return ScoreResult{Value: 0.0, Source: ScoreSourceFallback}
	}

	value, ok := parseScore(answer)
	if !ok {
		logger.Warnf("[Triage] no numeric score in response for message %s: %q", msg.ID, answer)
		return ScoreResult{Value: 0.0, Source: ScoreSourceFallback}
	}
	return ScoreResult{Value: value, Source: ScoreSourceModel}
}

// parseScore extracts the first decimal number from free-form model output.
func parseScore(text string) (float64, bool) {
	match := scorePattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
