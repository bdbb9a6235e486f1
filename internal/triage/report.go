package triage

import (
	"fmt"
	"strings"
	"time"
)

// formatDate renders a timestamp for prompts and report lines.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 03:04PM")
}

// FormatReportForDisplay renders the report as the plain-text digest used for
// logging and email delivery.
func FormatReportForDisplay(report *Report, windowLabel string) string {
	if report == nil || report.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Inbox Triage - %s\n", windowLabel))

	sb.WriteString("\n--- Top Important Emails ---\n")
	if len(report.TopImportant) == 0 {
		sb.WriteString("none\n")
	}
	for i, entry := range report.TopImportant {
		sb.WriteString(fmt.Sprintf("%d. [%.1f] %s - %s (%s)\n",
			i+1, entry.Score.Value, entry.Message.Sender, entry.Message.Subject, formatDate(entry.Message.ReceivedAt)))
		if summary := flatten(entry.Summary.Text); summary != "" {
			sb.WriteString("   " + summary + "\n")
		}
	}

	sb.WriteString("\n--- Emails Requiring a Reply ---\n")
	if len(report.NeedsReply) == 0 {
		sb.WriteString("none\n")
	}
	for _, entry := range report.NeedsReply {
		sb.WriteString(fmt.Sprintf("- %s - %s (%s)\n",
			entry.Message.Sender, entry.Message.Subject, formatDate(entry.Message.ReceivedAt)))
		if summary := flatten(entry.Summary.Text); summary != "" {
			sb.WriteString("  " + summary + "\n")
		}
	}

	return sb.String()
}

// flatten collapses a multi-line summary into a single report line.
func flatten(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
