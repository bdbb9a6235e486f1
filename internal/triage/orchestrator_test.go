package triage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/summarizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context, query string) ([]gmail.Message, error)

func (f fetcherFunc) FetchMessages(ctx context.Context, query string) ([]gmail.Message, error) {
	return f(ctx, query)
}

type classifierFunc func(ctx context.Context, msg *gmail.Message) ClassificationResult

func (f classifierFunc) Classify(ctx context.Context, msg *gmail.Message) ClassificationResult {
	return f(ctx, msg)
}

type scorerFunc func(ctx context.Context, msg *gmail.Message) ScoreResult

func (f scorerFunc) Score(ctx context.Context, msg *gmail.Message) ScoreResult {
	return f(ctx, msg)
}

type summarizerFunc func(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult

func (f summarizerFunc) Summarize(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult {
	return f(ctx, msg)
}

type memoryCache struct {
	entries map[string]summarizer.SummaryResult
	puts    []string
}

func (c *memoryCache) Get(ctx context.Context, messageID string) (*summarizer.SummaryResult, bool) {
	if r, ok := c.entries[messageID]; ok {
		return &r, true
	}
	return nil, false
}

func (c *memoryCache) Put(ctx context.Context, messageID string, result summarizer.SummaryResult) {
	c.entries[messageID] = result
	c.puts = append(c.puts, messageID)
}

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func testMessage(id, sender, subject string, receivedAt time.Time) gmail.Message {
	return gmail.Message{
		ID:         id,
		Sender:     sender,
		Subject:    subject,
		ReceivedAt: receivedAt,
		BodyText:   "body of " + id,
	}
}

func newTestOrchestrator(
	fetch fetcherFunc,
	classify classifierFunc,
	score scorerFunc,
	summarize summarizerFunc,
	cache SummaryCache,
) *Orchestrator {
	if classify == nil {
		classify = func(ctx context.Context, msg *gmail.Message) ClassificationResult {
			return ClassificationResult{NeedsReply: false, Source: SourceModel}
		}
	}
	if score == nil {
		score = func(ctx context.Context, msg *gmail.Message) ScoreResult {
			return ScoreResult{Value: 5, Source: ScoreSourceModel}
		}
	}
	if summarize == nil {
		summarize = func(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult {
			return summarizer.SummaryResult{Text: "summary of " + msg.ID}
		}
	}
	o := NewOrchestrator(fetch, classify, score, summarize, cache, &config.Triage{})
	o.now = func() time.Time { return testNow }
	return o
}

func TestRun_EmptyFetchYieldsEmptyReport(t *testing.T) {
	classified := 0
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return nil, nil },
		func(ctx context.Context, msg *gmail.Message) ClassificationResult {
			classified++
			return ClassificationResult{}
		},
		nil, nil, nil,
	)

	report, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.Zero(t, classified)
}

func TestRun_FetchErrorAbortsRun(t *testing.T) {
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) {
			return nil, errors.New("network down")
		},
		nil, nil, nil, nil,
	)

	_, err := o.Run(context.Background(), 24*time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching messages")
}

func TestRun_DropsOldAndUndatedMessages(t *testing.T) {
	messages := []gmail.Message{
		testMessage("undated", "a@example.com", "no date header", time.Time{}),
		testMessage("old", "b@example.com", "two days ago", testNow.Add(-48*time.Hour)),
		testMessage("recent", "c@example.com", "an hour ago", testNow.Add(-time.Hour)),
	}
	var classified []string
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return messages, nil },
		func(ctx context.Context, msg *gmail.Message) ClassificationResult {
			classified = append(classified, msg.ID)
			return ClassificationResult{NeedsReply: false, Source: SourceModel}
		},
		nil, nil, nil,
	)

	_, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"recent"}, classified)
}

func TestRun_ExcludesMarketingMessages(t *testing.T) {
	received := testNow.Add(-time.Hour)
	messages := []gmail.Message{
		testMessage("m1", "shop@store.com", "Huge SALE this weekend", received),
		testMessage("m2", "marketing@corp.com", "Quarterly roadmap", received),
		testMessage("m3", "friend@example.com", "Special offer just for you", received),
		testMessage("m4", "deals@travel.com", "Your itinerary", received),
		testMessage("m5", "alice@example.com", "Lunch tomorrow?", received),
	}
	var classified []string
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return messages, nil },
		func(ctx context.Context, msg *gmail.Message) ClassificationResult {
			classified = append(classified, msg.ID)
			return ClassificationResult{NeedsReply: false, Source: SourceModel}
		},
		nil, nil, nil,
	)

	_, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"m5"}, classified)
}

func TestRun_BucketsAreDisjoint(t *testing.T) {
	received := testNow.Add(-time.Hour)
	messages := []gmail.Message{
		testMessage("needs-reply", "alice@example.com", "Question", received),
		testMessage("informational", "bob@example.com", "FYI", received),
	}
	var scored []string
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return messages, nil },
		func(ctx context.Context, msg *gmail.Message) ClassificationResult {
			return ClassificationResult{NeedsReply: msg.ID == "needs-reply", Source: SourceModel}
		},
		func(ctx context.Context, msg *gmail.Message) ScoreResult {
			scored = append(scored, msg.ID)
			return ScoreResult{Value: 5, Source: ScoreSourceModel}
		},
		nil, nil,
	)

	report, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"informational"}, scored)
	require.Len(t, report.NeedsReply, 1)
	require.Len(t, report.TopImportant, 1)
	assert.Equal(t, "needs-reply", report.NeedsReply[0].Message.ID)
	assert.Equal(t, "informational", report.TopImportant[0].Message.ID)
}

func TestRun_RanksTopByScoreWithStableTies(t *testing.T) {
	received := testNow.Add(-time.Hour)
	scores := map[string]float64{
		"m1": 5, "m2": 9, "m3": 5, "m4": 7, "m5": 9, "m6": 1, "m7": 3,
	}
	var messages []gmail.Message
	for i := 1; i <= 7; i++ {
		id := fmt.Sprintf("m%d", i)
		messages = append(messages, testMessage(id, id+"@example.com", "subject "+id, received))
	}
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return messages, nil },
		nil,
		func(ctx context.Context, msg *gmail.Message) ScoreResult {
			return ScoreResult{Value: scores[msg.ID], Source: ScoreSourceModel}
		},
		nil, nil,
	)

	report, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, report.TopImportant, 5)

	var got []string
	for _, entry := range report.TopImportant {
		got = append(got, entry.Message.ID)
	}
	// ties keep fetch order: m2 before m5 at 9, m1 before m3 at 5
	assert.Equal(t, []string{"m2", "m5", "m4", "m1", "m3"}, got)
	assert.Equal(t, "summary of m2", report.TopImportant[0].Summary.Text)
}

func TestRun_SummaryCacheSkipsSummarizer(t *testing.T) {
	received := testNow.Add(-time.Hour)
	messages := []gmail.Message{
		testMessage("cached", "alice@example.com", "Known", received),
		testMessage("fresh", "bob@example.com", "New", received),
	}
	cache := &memoryCache{entries: map[string]summarizer.SummaryResult{
		"cached": {Text: "from cache"},
	}}
	var summarized []string
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) { return messages, nil },
		nil, nil,
		func(ctx context.Context, msg *gmail.Message) summarizer.SummaryResult {
			summarized = append(summarized, msg.ID)
			return summarizer.SummaryResult{Text: "fresh summary"}
		},
		cache,
	)
	o.summaryWorkers = 1

	report, err := o.Run(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, summarized)
	assert.Equal(t, []string{"fresh"}, cache.puts)

	for _, entry := range report.TopImportant {
		if entry.Message.ID == "cached" {
			assert.Equal(t, "from cache", entry.Summary.Text)
		}
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	received := testNow.Add(-time.Hour)
	o := newTestOrchestrator(
		func(ctx context.Context, query string) ([]gmail.Message, error) {
			cancel()
			return []gmail.Message{testMessage("m1", "a@example.com", "s", received)}, nil
		},
		nil, nil, nil, nil,
	)

	_, err := o.Run(ctx, 24*time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run cancelled")
}

func TestIsMarketing(t *testing.T) {
	assert.True(t, isMarketing(&gmail.Message{Subject: "Limited time DISCOUNT"}))
	assert.True(t, isMarketing(&gmail.Message{Sender: "deals@shop.com"}))
	assert.False(t, isMarketing(&gmail.Message{Subject: "Project update", Sender: "alice@example.com"}))
}
