package triage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/fachebot/inbox-hero/internal/summarizer"
	"golang.org/x/sync/errgroup"
)

// marketingKeywords are hard exclusions, matched case-insensitively against
// subject or sender before classification.
var marketingKeywords = []string{"marketing", "discount", "sale", "offer", "deal"}

// messageFetcher is the mail surface used by a run (mockable in tests).
type messageFetcher interface {
	FetchMessages(ctx context.Context, query string) ([]gmail.Message, error)
}

// messageClassifier decides the reply bucket (mockable in tests).
type messageClassifier interface {
	Classify(ctx context.Context, msg *gmail.Message) ClassificationResult
}

// messageScorer ranks the scoring bucket (mockable in tests).
type messageScorer interface {
	Score(ctx context.Context, msg *gmail.Message) ScoreResult
}

// messageSummarizer produces report summaries (mockable in tests).
type messageSummarizer interface {
	Summarize(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult
}

// SummaryCache memoizes summaries by message id across runs and UI
// interactions. Entries are write-once, read-many; Put is only called for ids
// Get missed.
type SummaryCache interface {
	Get(ctx context.Context, messageID string) (*summarizer.SummaryResult, bool)
	Put(ctx context.Context, messageID string, result summarizer.SummaryResult)
}

type Orchestrator struct {
	fetcher        messageFetcher
	classifier     messageClassifier
	scorer         messageScorer
	summarizer     messageSummarizer
	cache          SummaryCache // optional, may be nil
	topCount       int
	summaryWorkers int
	now            func() time.Time
}

// NewOrchestrator wires a triage run. cache may be nil to disable memoization.
func NewOrchestrator(
	fetcher messageFetcher,
	classifier messageClassifier,
	scorer messageScorer,
	msgSummarizer messageSummarizer,
	cache SummaryCache,
	cfg *config.Triage,
) *Orchestrator {
	topCount := cfg.TopCount
	if topCount <= 0 {
		topCount = 5
	}
	summaryWorkers := cfg.SummaryWorkers
	if summaryWorkers <= 0 {
		summaryWorkers = 2
	}
	return &Orchestrator{
		fetcher:        fetcher,
		classifier:     classifier,
		scorer:         scorer,
		summarizer:     msgSummarizer,
		cache:          cache,
		topCount:       topCount,
		summaryWorkers: summaryWorkers,
		now:            time.Now,
	}
}

// Run executes one triage pass over the messages of the past window:
// fetch, filter, classify, score, rank and summarize. An empty fetch or an
// empty post-filter set yields an empty report, not an error; only fetch
// failures and cancellation abort the run.
func (o *Orchestrator) Run(ctx context.Context, window time.Duration) (*Report, error) {
	return o.RunSince(ctx, o.now().Add(-window))
}

// RunSince triages messages received at or after the threshold. Recovery of a
// persisted run re-enters here with the run's original window start.
func (o *Orchestrator) RunSince(ctx context.Context, threshold time.Time) (*Report, error) {
	query := gmail.BuildInboxQuery(threshold)
	logger.Infof("[Triage] fetching messages with query %q", query)

	messages, err := o.fetcher.FetchMessages(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	if len(messages) == 0 {
		logger.Infof("[Triage] no messages in window, returning empty report")
		return &Report{}, nil
	}

	// the provider query has day granularity; re-apply the exact bound and
	// drop messages whose receive time could not be determined
	recent := make([]gmail.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.ReceivedAt.IsZero() {
			logger.Warnf("[Triage] skipping message %s: unparsable date", msg.ID)
			continue
		}
		if msg.ReceivedAt.Before(threshold) {
			continue
		}
		recent = append(recent, msg)
	}
	logger.Infof("[Triage] %d of %d messages inside the time window", len(recent), len(messages))

	filtered := make([]gmail.Message, 0, len(recent))
	for _, msg := range recent {
		if isMarketing(&msg) {
			logger.Debugf("[Triage] excluding marketing message %s (%s)", msg.ID, msg.Subject)
			continue
		}
		filtered = append(filtered, msg)
	}
	if len(filtered) == 0 {
		logger.Infof("[Triage] nothing left after filtering, returning empty report")
		return &Report{}, nil
	}

	// classify and score sequentially in fetch order; the LLM client's shared
	// rate limiter paces the external calls
	type scored struct {
		msg   gmail.Message
		score ScoreResult
	}
	var replyBucket []gmail.Message
	var scoringBucket []scored
	for i := range filtered {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		msg := filtered[i]
		classification := o.classifier.Classify(ctx, &msg)
		if classification.NeedsReply {
			replyBucket = append(replyBucket, msg)
			continue
		}
		scoringBucket = append(scoringBucket, scored{msg: msg, score: o.scorer.Score(ctx, &msg)})
	}

	// stable sort keeps fetch order for equal scores
	sort.SliceStable(scoringBucket, func(i, j int) bool {
		return scoringBucket[i].score.Value > scoringBucket[j].score.Value
	})
	top := scoringBucket
	if len(top) > o.topCount {
		top = top[:o.topCount]
	}

	report := &Report{
		TopImportant: make([]RankedEntry, len(top)),
		NeedsReply:   make([]ReplyEntry, len(replyBucket)),
	}
	for i, entry := range top {
		report.TopImportant[i] = RankedEntry{Message: entry.msg, Score: entry.score}
	}
	for i, msg := range replyBucket {
		report.NeedsReply[i] = ReplyEntry{Message: msg}
	}

	// summaries are independent of each other; run them on a bounded pool and
	// write results by index so completion order cannot affect the report
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(o.summaryWorkers)
	for i := range report.TopImportant {
		group.Go(func() error {
			report.TopImportant[i].Summary = o.summarize(groupCtx, &report.TopImportant[i].Message)
			return nil
		})
	}
	for i := range report.NeedsReply {
		group.Go(func() error {
			report.NeedsReply[i].Summary = o.summarize(groupCtx, &report.NeedsReply[i].Message)
			return nil
		})
	}
	_ = group.Wait()

	logger.Infof("[Triage] run complete: %d top important, %d need a reply",
		len(report.TopImportant), len(report.NeedsReply))
	return report, nil
}

// summarize consults the cache before calling the summarizer and populates it
// on a miss.
func (o *Orchestrator) summarize(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult {
	if o.cache != nil {
		if cached, ok := o.cache.Get(ctx, msg.ID); ok {
			logger.Debugf("[Triage] summary cache hit for message %s", msg.ID)
			return *cached
		}
	}
	result := o.summarizer.Summarize(ctx, msg)
	if o.cache != nil {
		o.cache.Put(ctx, msg.ID, result)
	}
	return result
}

// isMarketing reports whether subject or sender contains a marketing keyword.
func isMarketing(msg *gmail.Message) bool {
	subject := strings.ToLower(msg.Subject)
	sender := strings.ToLower(msg.Sender)
	for _, keyword := range marketingKeywords {
		if strings.Contains(subject, keyword) || strings.Contains(sender, keyword) {
			return true
		}
	}
	return false
}
