package triage

import (
	"testing"
	"time"

	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/summarizer"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Empty(t, formatDate(time.Time{}))

	got := formatDate(time.Date(2026, 8, 29, 9, 5, 0, 0, time.Local))
	assert.Equal(t, "2026-08-29 09:05AM", got)
}

func TestFormatReportForDisplay_Empty(t *testing.T) {
	assert.Empty(t, FormatReportForDisplay(nil, "last 24 hours"))
	assert.Empty(t, FormatReportForDisplay(&Report{}, "last 24 hours"))
}

func TestFormatReportForDisplay(t *testing.T) {
	report := &Report{
		TopImportant: []RankedEntry{
			{
				Message: gmail.Message{Sender: "alice@example.com", Subject: "Budget review"},
				Summary: summarizer.SummaryResult{Text: "Finance numbers\nare in."},
				Score:   ScoreResult{Value: 8.5, Source: ScoreSourceModel},
			},
		},
		NeedsReply: []ReplyEntry{
			{
				Message: gmail.Message{Sender: "bob@example.com", Subject: "Lunch?"},
				Summary: summarizer.SummaryResult{Text: "Asks about lunch."},
			},
		},
	}

	got := FormatReportForDisplay(report, "last 24 hours")
	assert.Contains(t, got, "last 24 hours")
	assert.Contains(t, got, "1. [8.5] alice@example.com - Budget review")
	assert.Contains(t, got, "Finance numbers are in.")
	assert.Contains(t, got, "- bob@example.com - Lunch?")
	assert.Contains(t, got, "Asks about lunch.")
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "a b c", flatten(" a\nb\n\n c "))
	assert.Empty(t, flatten("\n \t"))
}
