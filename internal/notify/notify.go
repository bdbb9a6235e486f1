// Package notify delivers rendered triage reports to the configured
// destinations.
package notify

import (
	"context"
	"fmt"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/logger"
)

// reportSender is the mail surface used for email delivery (mockable in tests).
type reportSender interface {
	SendMessage(ctx context.Context, to, subject, body string) (string, error)
}

type Notifier struct {
	sender reportSender
	config *config.Triage
}

func NewNotifier(sender reportSender, cfg *config.Triage) *Notifier {
	return &Notifier{
		sender: sender,
		config: cfg,
	}
}

// Notify delivers the report according to NotifyMode. The "log" mode writes
// the report to the application log; "email" sends it to the configured
// addresses; "both" does both. Empty content is a no-op.
func (n *Notifier) Notify(ctx context.Context, subject, content string) error {
	if content == "" {
		return nil
	}

	switch n.config.NotifyMode {
	case "log":
		n.notifyLog(content)
		return nil
	case "email":
		return n.notifyEmail(ctx, subject, content)
	case "both":
		n.notifyLog(content)
		if err := n.notifyEmail(ctx, subject, content); err != nil {
			logger.Errorf("[Notify] email delivery failed: %v", err)
		}
		return nil
	default:
		logger.Warnf("[Notify] unknown notify mode: %s", n.config.NotifyMode)
		return nil
	}
}

func (n *Notifier) notifyLog(content string) {
	logger.Infof("[Notify] triage report:\n%s", content)
}

func (n *Notifier) notifyEmail(ctx context.Context, subject, content string) error {
	if len(n.config.NotifyEmails) == 0 {
		logger.Warnf("[Notify] no notify emails configured")
		return nil
	}

	for _, addr := range n.config.NotifyEmails {
		if _, err := n.sender.SendMessage(ctx, addr, subject, content); err != nil {
			return fmt.Errorf("sending report to %s: %w", addr, err)
		}
		logger.Infof("[Notify] report sent to %s", addr)
	}
	return nil
}
