// Package draft composes reply drafts for messages flagged as needing a
// human reply and stores them through the mail provider.
package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/llm"
	"github.com/fachebot/inbox-hero/internal/logger"
)

// draftBodyChars bounds the original body text sent to the model.
const draftBodyChars = 1000

var (
	// ErrGeneration marks a failed or empty reply generation; the mail
	// provider is never invoked in that case.
	ErrGeneration = errors.New("draft generation failed")
	// ErrSave marks a failed draft save; the generated text is preserved
	// alongside the error.
	ErrSave = errors.New("draft save failed")
)

// replyDrafter is the LLM surface used by the composer (mockable in tests).
type replyDrafter interface {
	DraftReply(ctx context.Context, subject, sender, date, body string) (string, error)
}

// draftSaver is the mail surface used by the composer (mockable in tests).
type draftSaver interface {
	CreateDraft(ctx context.Context, to, subject, body string) (string, error)
}

// Store records the draft lifecycle. Storage failures only degrade the audit
// trail and never abort composition.
type Store interface {
	SaveGenerated(ctx context.Context, messageID, recipient, subject, content string) (int, error)
	MarkSaved(ctx context.Context, id int, draftID string) error
	MarkFailed(ctx context.Context, id int, reason string) error
}

type Composer struct {
	llmClient replyDrafter
	saver     draftSaver
	store     Store // optional, may be nil
}

// NewComposer wires a reply composer. store may be nil to disable persistence.
func NewComposer(llmClient *llm.Client, saver *gmail.Client, store Store) *Composer {
	return &Composer{llmClient: llmClient, saver: saver, store: store}
}

// ComposeAndSave generates a reply draft for the message and saves it as a
// provider draft addressed to the original sender. Generation failures
// short-circuit before any save attempt. On save failure the generated text
// is still returned so no work is lost.
func (c *Composer) ComposeAndSave(ctx context.Context, msg *gmail.Message) (string, error) {
	body := msg.Body()
	if len(body) > draftBodyChars {
		body = body[:draftBodyChars] + "..."
	}

	text, err := c.llmClient.DraftReply(ctx, msg.Subject, msg.Sender, formatDate(msg.ReceivedAt), body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: model returned empty reply", ErrGeneration)
	}

	subject := ReplySubject(msg.Subject)
	recordID := 0
	if c.store != nil {
		recordID, err = c.store.SaveGenerated(ctx, msg.ID, msg.Sender, subject, text)
		if err != nil {
			logger.Warnf("[Draft] storing generated draft for message %s failed: %v", msg.ID, err)
			recordID = 0
		}
	}

	draftID, err := c.saver.CreateDraft(ctx, msg.Sender, subject, text)
	if err != nil {
		if c.store != nil && recordID != 0 {
			if markErr := c.store.MarkFailed(ctx, recordID, err.Error()); markErr != nil {
				logger.Warnf("[Draft] marking draft record %d failed: %v", recordID, markErr)
			}
		}
		return text, fmt.Errorf("%w: %v", ErrSave, err)
	}
	if c.store != nil && recordID != 0 {
		if markErr := c.store.MarkSaved(ctx, recordID, draftID); markErr != nil {
			logger.Warnf("[Draft] marking draft record %d saved: %v", recordID, markErr)
		}
	}

	logger.Infof("[Draft] reply draft %s created for message %s", draftID, msg.ID)
	return text, nil
}

// ReplySubject prefixes the subject with "Re: " unless it already starts with
// one, case-insensitively; a subject is never double-prefixed.
func ReplySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 03:04PM")
}
