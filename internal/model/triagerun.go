package model

import (
	"context"
	"time"

	"github.com/fachebot/inbox-hero/internal/ent"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
)

type TriageRunModel struct {
	client *ent.TriageRunClient
}

func NewTriageRunModel(client *ent.TriageRunClient) *TriageRunModel {
	return &TriageRunModel{client: client}
}

// Create creates a TriageRun record.
func (m *TriageRunModel) Create(ctx context.Context, startTime, endTime time.Time, status triagerun.Status) (*ent.TriageRun, error) {
	return m.client.Create().
		SetStartTime(startTime).
		SetEndTime(endTime).
		SetStatus(status).
		Save(ctx)
}

// GetOrCreate returns the existing run for the window or creates a new one,
// so a window is never triaged twice.
func (m *TriageRunModel) GetOrCreate(ctx context.Context, startTime, endTime time.Time, status triagerun.Status) (*ent.TriageRun, error) {
	existing, err := m.client.Query().
		Where(
			triagerun.StartTimeEQ(startTime),
			triagerun.EndTimeEQ(endTime),
		).
		First(ctx)

	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return m.Create(ctx, startTime, endTime, status)
}

// GetIncompleteRuns returns runs left in pending or in_progress, oldest first.
func (m *TriageRunModel) GetIncompleteRuns(ctx context.Context) ([]*ent.TriageRun, error) {
	return m.client.Query().
		Where(
			triagerun.Or(
				triagerun.StatusEQ(triagerun.StatusPending),
				triagerun.StatusEQ(triagerun.StatusInProgress),
			),
		).
		Order(triagerun.ByCreateTime()).
		All(ctx)
}

// SetReportContent persists the rendered report before delivery is attempted.
func (m *TriageRunModel) SetReportContent(ctx context.Context, id int, content string) error {
	return m.client.UpdateOneID(id).SetReportContent(content).Exec(ctx)
}

// MarkInProgress marks the run as executing.
func (m *TriageRunModel) MarkInProgress(ctx context.Context, id int) error {
	return m.client.UpdateOneID(id).SetStatus(triagerun.StatusInProgress).Exec(ctx)
}

// MarkCompleted marks the run as completed.
func (m *TriageRunModel) MarkCompleted(ctx context.Context, id int) error {
	return m.client.UpdateOneID(id).SetStatus(triagerun.StatusCompleted).Exec(ctx)
}

// MarkFailed marks the run as failed with a reason.
func (m *TriageRunModel) MarkFailed(ctx context.Context, id int, errorMsg string) error {
	return m.client.UpdateOneID(id).
		SetStatus(triagerun.StatusFailed).
		SetErrorMessage(errorMsg).
		Exec(ctx)
}
