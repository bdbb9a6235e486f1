package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReportSender struct {
	mock.Mock
}

func (m *mockReportSender) SendMessage(ctx context.Context, to, subject, body string) (string, error) {
	args := m.Called(ctx, to, subject, body)
	return args.String(0), args.Error(1)
}

func TestNotify_EmptyContentIsNoOp(t *testing.T) {
	sender := new(mockReportSender)
	n := NewNotifier(sender, &config.Triage{NotifyMode: "email", NotifyEmails: []string{"me@example.com"}})

	err := n.Notify(context.Background(), "subject", "")
	require.NoError(t, err)
	sender.AssertNotCalled(t, "SendMessage")
}

func TestNotify_LogModeSkipsEmail(t *testing.T) {
	sender := new(mockReportSender)
	n := NewNotifier(sender, &config.Triage{NotifyMode: "log"})

	err := n.Notify(context.Background(), "subject", "report body")
	require.NoError(t, err)
	sender.AssertNotCalled(t, "SendMessage")
}

func TestNotify_EmailMode(t *testing.T) {
	sender := new(mockReportSender)
	sender.On("SendMessage", mock.Anything, "a@example.com", "subject", "report body").Return("id1", nil).Once()
	sender.On("SendMessage", mock.Anything, "b@example.com", "subject", "report body").Return("id2", nil).Once()
	n := NewNotifier(sender, &config.Triage{NotifyMode: "email", NotifyEmails: []string{"a@example.com", "b@example.com"}})

	err := n.Notify(context.Background(), "subject", "report body")
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestNotify_EmailModeErrorPropagates(t *testing.T) {
	sender := new(mockReportSender)
	sender.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))
	n := NewNotifier(sender, &config.Triage{NotifyMode: "email", NotifyEmails: []string{"a@example.com"}})

	err := n.Notify(context.Background(), "subject", "report body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a@example.com")
}

func TestNotify_BothModeToleratesEmailFailure(t *testing.T) {
	sender := new(mockReportSender)
	sender.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))
	n := NewNotifier(sender, &config.Triage{NotifyMode: "both", NotifyEmails: []string{"a@example.com"}})

	err := n.Notify(context.Background(), "subject", "report body")
	assert.NoError(t, err)
}

func TestNotify_NoEmailsConfigured(t *testing.T) {
	sender := new(mockReportSender)
	n := NewNotifier(sender, &config.Triage{NotifyMode: "email"})

	err := n.Notify(context.Background(), "subject", "report body")
	require.NoError(t, err)
	sender.AssertNotCalled(t, "SendMessage")
}
