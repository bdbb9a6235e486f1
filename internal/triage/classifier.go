package triage

import (
	"context"
	"strings"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/llm"
	"github.com/fachebot/inbox-hero/internal/logger"
)

// classifyBodyChars bounds the body text sent to the model for classification.
const classifyBodyChars = 500

// replyClassifier is the LLM surface used by the classifier (mockable in tests).
type replyClassifier interface {
	ClassifyReplyNeed(ctx context.Context, subject, sender, date, body string) (string, error)
}

type Classifier struct {
	llmClient replyClassifier
}

func NewClassifier(llmClient *llm.Client) *Classifier {
	return &Classifier{llmClient: llmClient}
}

// Classify decides whether the message needs a human reply. Senders that
// contain noreply/no-reply are decided by heuristic without a model call, and
// any model failure falls back to needsReply=false; a failed classification
// must never escalate to "needs reply".
func (c *Classifier) Classify(ctx context.Context, msg *gmail.Message) ClassificationResult {
	sender := strings.ToLower(msg.Sender)
	if strings.Contains(sender, "noreply") || strings.Contains(sender, "no-reply") {
		return ClassificationResult{NeedsReply: false, Source: SourceHeuristic}
	}

	body := msg.Body()
	if len(body) > classifyBodyChars {
		body = body[:classifyBodyChars] + "..."
	}

	answer, err := c.llmClient.ClassifyReplyNeed(ctx, msg.Subject, msg.Sender, formatDate(msg.ReceivedAt), body)
	if err != nil {
		logger.Errorf("[Triage] reply classification failed for message %s: %v", msg.ID, err)
		return ClassificationResult{NeedsReply: false, Source: SourceFallback}
	}

	needsReply := strings.ToLower(strings.TrimSpace(answer)) == "yes"
	return ClassificationResult{NeedsReply: needsReply, Source: SourceModel}
}
