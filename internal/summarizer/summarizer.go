package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/inbox-hero/internal/convert"
	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/llm"
	"github.com/fachebot/inbox-hero/internal/logger"
)

// maxBodyChars bounds the body text sent to the model.
const maxBodyChars = 2000

// llmSummarizer is the LLM surface used here (mockable in tests).
type llmSummarizer interface {
	SummarizeBody(ctx context.Context, body string) (string, error)
	SummarizeAttachment(ctx context.Context, text string) (string, error)
}

// attachmentFetcher retrieves raw attachment bytes (mockable in tests).
type attachmentFetcher interface {
	AttachmentData(ctx context.Context, att gmail.Attachment) ([]byte, error)
}

// docConverter extracts text from attachment bytes (mockable in tests).
type docConverter interface {
	Convert(data []byte, filename string) (string, error)
}

type Summarizer struct {
	llmClient llmSummarizer
	fetcher   attachmentFetcher
	converter docConverter
}

func NewSummarizer(llmClient *llm.Client, fetcher *gmail.Client, converter *convert.Converter) *Summarizer {
	return &Summarizer{
		llmClient: llmClient,
		fetcher:   fetcher,
		converter: converter,
	}
}

// Summarize produces the combined summary for one message: a 2-3 line body
// summary plus, when attachments exist, a labeled block of per-attachment
// summaries. An empty body yields an empty text summary without a model call.
// Per-attachment failures are recorded inline and never abort the siblings.
func (s *Summarizer) Summarize(ctx context.Context, msg *gmail.Message) SummaryResult {
	var textSummary string
	body := msg.Body()
	if body != "" {
		if len(body) > maxBodyChars {
			body = body[:maxBodyChars] + "..."
		}
		summary, err := s.llmClient.SummarizeBody(ctx, body)
		if err != nil {
			logger.Errorf("[Summarizer] body summary failed for message %s: %v", msg.ID, err)
			textSummary = fmt.Sprintf("Error summarizing text: %v", err)
		} else {
			textSummary = summary
		}
	}

	if len(msg.Attachments) == 0 {
		return SummaryResult{Text: textSummary}
	}

	result := SummaryResult{HadAttachments: true}
	attSummaries := make([]string, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		if ctx.Err() != nil {
			attSummaries = append(attSummaries, fmt.Sprintf("Error summarizing attachment %s: %v", att.Filename, ctx.Err()))
			result.AttachmentErrors = append(result.AttachmentErrors, attSummaries[len(attSummaries)-1])
			continue
		}
		summary, err := s.summarizeAttachment(ctx, att)
		if err != nil {
			logger.Errorf("[Summarizer] attachment %s of message %s failed: %v", att.Filename, msg.ID, err)
			inline := fmt.Sprintf("Error summarizing attachment %s: %v", att.Filename, err)
			attSummaries = append(attSummaries, inline)
			result.AttachmentErrors = append(result.AttachmentErrors, inline)
			continue
		}
		attSummaries = append(attSummaries, summary)
	}

	combined := fmt.Sprintf("%s \n\n Attachments Summary: %s", textSummary, strings.Join(attSummaries, " "))
	result.Text = "This email contains attachments. " + combined
	return result
}

// summarizeAttachment fetches, converts and summarizes a single attachment.
func (s *Summarizer) summarizeAttachment(ctx context.Context, att gmail.Attachment) (string, error) {
	data, err := s.fetcher.AttachmentData(ctx, att)
	if err != nil {
		return "", fmt.Errorf("fetching content: %w", err)
	}

	text, err := s.converter.Convert(data, att.Filename)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}

	summary, err := s.llmClient.SummarizeAttachment(ctx, text)
	if err != nil {
		return "", fmt.Errorf("summarizing: %w", err)
	}
	return summary, nil
}
