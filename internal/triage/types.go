package triage

import (
	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/summarizer"
)

// ClassificationSource records how a reply-needed decision was made.
type ClassificationSource string

const (
	SourceHeuristic ClassificationSource = "heuristic"
	SourceModel     ClassificationSource = "model"
	SourceFallback  ClassificationSource = "fallback"
)

// ClassificationResult is the binary reply-needed decision for one message.
type ClassificationResult struct {
	NeedsReply bool
	Source     ClassificationSource
}

// ScoreSource records whether a score came from the model or the safe default.
type ScoreSource string

const (
	ScoreSourceModel    ScoreSource = "model"
	ScoreSourceFallback ScoreSource = "fallback"
)

// ScoreResult is the importance score for one message. The value is taken
// verbatim from the model; a response outside the requested 1-10 range is
// accepted as-is.
type ScoreResult struct {
	Value  float64
	Source ScoreSource
}

// RankedEntry pairs a scored message with its summary.
type RankedEntry struct {
	Message gmail.Message
	Summary summarizer.SummaryResult
	Score   ScoreResult
}

// ReplyEntry pairs a reply-needed message with its summary.
type ReplyEntry struct {
	Message gmail.Message
	Summary summarizer.SummaryResult
}

// Report is the outcome of one triage run. TopImportant is sorted by score
// descending with fetch order breaking ties; the two lists are disjoint.
type Report struct {
	TopImportant []RankedEntry
	NeedsReply   []ReplyEntry
}

// Empty reports whether the run produced no entries at all.
func (r *Report) Empty() bool {
	return len(r.TopImportant) == 0 && len(r.NeedsReply) == 0
}
