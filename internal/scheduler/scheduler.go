// Package scheduler drives periodic triage runs, recovers runs interrupted by
// a crash and prunes aged summary cache rows.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/ent"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/fachebot/inbox-hero/internal/model"
	"github.com/fachebot/inbox-hero/internal/notify"
	"github.com/fachebot/inbox-hero/internal/triage"
	"github.com/robfig/cron/v3"
)

// staleRunDays bounds how far back crash recovery will re-run a window.
const staleRunDays = 7

// triageRunner is the pipeline surface used by the scheduler (mockable in tests).
type triageRunner interface {
	RunSince(ctx context.Context, threshold time.Time) (*triage.Report, error)
}

// reportNotifier delivers rendered reports (mockable in tests).
type reportNotifier interface {
	Notify(ctx context.Context, subject, content string) error
}

type Scheduler struct {
	cron              *cron.Cron
	orchestrator      triageRunner
	notifier          reportNotifier
	triageRunModel    *model.TriageRunModel
	summaryCacheModel *model.SummaryCacheModel
	config            *config.Triage
	ctx               context.Context
	cancel            context.CancelFunc
	mu                sync.Mutex
}

func NewScheduler(
	orchestrator *triage.Orchestrator,
	notifier *notify.Notifier,
	triageRunModel *model.TriageRunModel,
	summaryCacheModel *model.SummaryCacheModel,
	cfg *config.Triage,
) *Scheduler {
	return &Scheduler{
		cron:              cron.New(),
		orchestrator:      orchestrator,
		notifier:          notifier,
		triageRunModel:    triageRunModel,
		summaryCacheModel: summaryCacheModel,
		config:            cfg,
	}
}

// Start registers the cron entry and kicks off crash recovery.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	_, err := s.cron.AddFunc(s.config.Cron, s.runTriage)
	if err != nil {
		return fmt.Errorf("registering triage job: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] started, triage schedule: %s", s.config.Cron)

	go s.recoverRuns()

	return nil
}

// Stop cancels in-flight work and waits for the cron runner to drain.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] stopped")
}

// runTriage executes the scheduled triage pass (cron entry point).
func (s *Scheduler) runTriage() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] job cancelled, exiting")
		return
	default:
	}

	windowHours := s.config.TimeWindowHours
	if windowHours <= 0 {
		windowHours = 24
	}
	// hour granularity so a restart inside the same hour resumes the same run
	endTime := time.Now().Truncate(time.Hour)
	startTime := endTime.Add(-time.Duration(windowHours) * time.Hour)

	logger.Infof("[Scheduler] starting triage run, window: %s ~ %s",
		startTime.Format("2006-01-02 15:04"), endTime.Format("2006-01-02 15:04"))

	// the run record exists before any work so a crash can be recovered
	run, err := s.triageRunModel.GetOrCreate(ctx, startTime, endTime, triagerun.StatusInProgress)
	if err != nil {
		logger.Errorf("[Scheduler] get or create triage run failed: %v", err)
		return
	}
	if run.Status == triagerun.StatusCompleted {
		logger.Infof("[Scheduler] window already triaged, skipping")
		return
	}

	if err := s.executeRun(ctx, run); err != nil {
		logger.Errorf("[Scheduler] triage run failed: %v", err)
		_ = s.triageRunModel.MarkFailed(ctx, run.ID, err.Error())
		return
	}
	_ = s.triageRunModel.MarkCompleted(ctx, run.ID)
	logger.Infof("[Scheduler] triage run completed")

	s.cleanupSummaryCache(ctx)
}

// executeRun performs the two phases of a run: produce and persist the report,
// then deliver it. A run recovered with persisted content only retries
// delivery.
func (s *Scheduler) executeRun(ctx context.Context, run *ent.TriageRun) error {
	windowLabel := fmt.Sprintf("%s ~ %s",
		run.StartTime.Format("2006-01-02 15:04"), run.EndTime.Format("2006-01-02 15:04"))
	subject := "Inbox triage report " + run.EndTime.Format("2006-01-02 15:04")

	content := run.ReportContent
	if content == "" {
		report, err := s.runWithRetry(ctx, run.StartTime)
		if err != nil {
			return err
		}
		if report.Empty() {
			logger.Infof("[Scheduler] empty report for window %s, nothing to deliver", windowLabel)
			return nil
		}

		content = triage.FormatReportForDisplay(report, windowLabel)
		if err := s.triageRunModel.SetReportContent(ctx, run.ID, content); err != nil {
			return fmt.Errorf("persisting report: %w", err)
		}
	} else {
		logger.Infof("[Scheduler] reusing persisted report for window %s, retrying delivery", windowLabel)
	}

	if err := s.notifier.Notify(ctx, subject, content); err != nil {
		return fmt.Errorf("delivering report: %w", err)
	}
	return nil
}

// runWithRetry runs the pipeline, retrying whole-run failures on an interval.
func (s *Scheduler) runWithRetry(ctx context.Context, threshold time.Time) (*triage.Report, error) {
	retryTimes := s.config.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 3
	}
	retryInterval := time.Duration(s.config.RetryInterval) * time.Second
	if retryInterval <= 0 {
		retryInterval = 60 * time.Second
	}

	var report *triage.Report
	var err error
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run cancelled")
		default:
		}
		report, err = s.orchestrator.RunSince(ctx, threshold)
		if err == nil {
			return report, nil
		}
		logger.Warnf("[Scheduler] triage attempt %d/%d failed: %v", attempt, retryTimes, err)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("run cancelled")
			case <-time.After(retryInterval):
			}
		}
	}
	return nil, fmt.Errorf("triage failed after %d attempts: %w", retryTimes, err)
}

// recoverRuns re-executes runs left pending or in_progress by a crash.
func (s *Scheduler) recoverRuns() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	incompleteRuns, err := s.triageRunModel.GetIncompleteRuns(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] querying incomplete runs failed: %v", err)
		return
	}
	if len(incompleteRuns) == 0 {
		return
	}

	logger.Infof("[Scheduler] found %d incomplete runs, recovering", len(incompleteRuns))
	cutoff := time.Now().AddDate(0, 0, -staleRunDays)

	for _, run := range incompleteRuns {
		select {
		case <-ctx.Done():
			logger.Infof("[Scheduler] recovery cancelled")
			return
		default:
		}
		if run.EndTime.Before(cutoff) {
			logger.Warnf("[Scheduler] skipping stale run %d (window ended %s)",
				run.ID, run.EndTime.Format("2006-01-02"))
			_ = s.triageRunModel.MarkFailed(ctx, run.ID, "window too old to recover")
			continue
		}

		logger.Infof("[Scheduler] recovering run %d, window: %s ~ %s", run.ID,
			run.StartTime.Format("2006-01-02 15:04"), run.EndTime.Format("2006-01-02 15:04"))
		if err := s.executeRun(ctx, run); err != nil {
			logger.Errorf("[Scheduler] recovering run %d failed: %v", run.ID, err)
			_ = s.triageRunModel.MarkFailed(ctx, run.ID, err.Error())
			continue
		}
		_ = s.triageRunModel.MarkCompleted(ctx, run.ID)
	}

	logger.Infof("[Scheduler] recovery finished")
}

// cleanupSummaryCache prunes cache rows past the retention window.
func (s *Scheduler) cleanupSummaryCache(ctx context.Context) {
	retentionDays := s.config.RetentionDays
	if retentionDays <= 0 {
		retentionDays = 7
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	removed, err := s.summaryCacheModel.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Errorf("[Scheduler] summary cache cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		logger.Infof("[Scheduler] removed %d summary cache rows older than %d days", removed, retentionDays)
	}
}
