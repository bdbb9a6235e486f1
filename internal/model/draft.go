package model

import (
	"context"

	"github.com/fachebot/inbox-hero/internal/ent"
	"github.com/fachebot/inbox-hero/internal/ent/draft"
)

type DraftModel struct {
	client *ent.DraftClient
}

func NewDraftModel(client *ent.DraftClient) *DraftModel {
	return &DraftModel{client: client}
}

type DraftData struct {
	MessageID string
	Recipient string
	Subject   string
	Content   string
}

// Upsert stores the generated draft for a message, replacing any earlier one.
func (m *DraftModel) Upsert(ctx context.Context, data *DraftData) (*ent.Draft, error) {
	existing, err := m.GetByMessageID(ctx, data.MessageID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if err == nil {
		return m.client.UpdateOneID(existing.ID).
			SetRecipient(data.Recipient).
			SetSubject(data.Subject).
			SetContent(data.Content).
			SetStatus(draft.StatusGenerated).
			ClearDraftID().
			ClearErrorMessage().
			Save(ctx)
	}
	return m.client.Create().
		SetMessageID(data.MessageID).
		SetRecipient(data.Recipient).
		SetSubject(data.Subject).
		SetContent(data.Content).
		Save(ctx)
}

// GetByMessageID returns the stored draft for a message.
func (m *DraftModel) GetByMessageID(ctx context.Context, messageID string) (*ent.Draft, error) {
	return m.client.Query().
		Where(draft.MessageIDEQ(messageID)).
		First(ctx)
}

// MarkSaved records the provider draft id after a successful save.
func (m *DraftModel) MarkSaved(ctx context.Context, id int, draftID string) error {
	return m.client.UpdateOneID(id).
		SetStatus(draft.StatusSaved).
		SetDraftID(draftID).
		Exec(ctx)
}

// MarkFailed records a save failure; the generated content stays intact.
func (m *DraftModel) MarkFailed(ctx context.Context, id int, errorMsg string) error {
	return m.client.UpdateOneID(id).
		SetStatus(draft.StatusFailed).
		SetErrorMessage(errorMsg).
		Exec(ctx)
}

// DraftStoreAdapter exposes the model behind the composer's store interface.
type DraftStoreAdapter struct {
	model *DraftModel
}

func NewDraftStoreAdapter(model *DraftModel) *DraftStoreAdapter {
	return &DraftStoreAdapter{model: model}
}

func (a *DraftStoreAdapter) SaveGenerated(ctx context.Context, messageID, recipient, subject, content string) (int, error) {
	row, err := a.model.Upsert(ctx, &DraftData{
		MessageID: messageID,
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (a *DraftStoreAdapter) MarkSaved(ctx context.Context, id int, draftID string) error {
	return a.model.MarkSaved(ctx, id, draftID)
}

func (a *DraftStoreAdapter) MarkFailed(ctx context.Context, id int, reason string) error {
	return a.model.MarkFailed(ctx, id, reason)
}
