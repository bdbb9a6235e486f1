package model

import (
	"context"
	"time"

	"github.com/fachebot/inbox-hero/internal/ent"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/fachebot/inbox-hero/internal/summarizer"
)

type SummaryCacheModel struct {
	client *ent.SummaryCacheClient
}

func NewSummaryCacheModel(client *ent.SummaryCacheClient) *SummaryCacheModel {
	return &SummaryCacheModel{client: client}
}

// GetByMessageID returns the cached summary for a message, if any.
func (m *SummaryCacheModel) GetByMessageID(ctx context.Context, messageID string) (*ent.SummaryCache, error) {
	return m.client.Query().
		Where(summarycache.MessageIDEQ(messageID)).
		First(ctx)
}

// Create stores a summary for a message.
func (m *SummaryCacheModel) Create(ctx context.Context, messageID string, result summarizer.SummaryResult) (*ent.SummaryCache, error) {
	create := m.client.Create().
		SetMessageID(messageID).
		SetContent(result.Text).
		SetHadAttachments(result.HadAttachments)
	if len(result.AttachmentErrors) > 0 {
		create.SetAttachmentErrors(result.AttachmentErrors)
	}
	return create.Save(ctx)
}

// DeleteOlderThan removes cache rows created before the cutoff and reports how
// many were removed.
func (m *SummaryCacheModel) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return m.client.Delete().
		Where(summarycache.CreateTimeLT(cutoff)).
		Exec(ctx)
}

// CacheAdapter exposes the model behind the orchestrator's cache interface.
// Storage errors degrade to cache misses so triage keeps working without it.
type CacheAdapter struct {
	model *SummaryCacheModel
}

func NewCacheAdapter(model *SummaryCacheModel) *CacheAdapter {
	return &CacheAdapter{model: model}
}

func (a *CacheAdapter) Get(ctx context.Context, messageID string) (*summarizer.SummaryResult, bool) {
	row, err := a.model.GetByMessageID(ctx, messageID)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warnf("[Model] summary cache lookup failed for %s: %v", messageID, err)
		}
		return nil, false
	}
	return &summarizer.SummaryResult{
		Text:             row.Content,
		HadAttachments:   row.HadAttachments,
		AttachmentErrors: row.AttachmentErrors,
	}, true
}

func (a *CacheAdapter) Put(ctx context.Context, messageID string, result summarizer.SummaryResult) {
	if _, err := a.model.Create(ctx, messageID, result); err != nil {
		logger.Warnf("[Model] summary cache store failed for %s: %v", messageID, err)
	}
}
