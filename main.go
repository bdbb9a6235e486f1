package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/convert"
	"github.com/fachebot/inbox-hero/internal/draft"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/fachebot/inbox-hero/internal/model"
	"github.com/fachebot/inbox-hero/internal/notify"
	"github.com/fachebot/inbox-hero/internal/scheduler"
	"github.com/fachebot/inbox-hero/internal/summarizer"
	"github.com/fachebot/inbox-hero/internal/svc"
	"github.com/fachebot/inbox-hero/internal/triage"
)

var (
	configFile   = flag.String("f", "etc/config.yaml", "the config file")
	runOnce      = flag.Bool("once", false, "run one triage pass, print the report and exit")
	draftMessage = flag.String("draft", "", "compose and save a reply draft for the given message id, then exit")
)

func main() {
	flag.Parse()

	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("failed to load config file, %s", err)
	}

	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("failed to create data directory, %s", err)
		}
	}

	svcCtx := svc.NewServiceContext(c)
	defer svcCtx.Close()

	converter := convert.NewConverter()
	summarizerInstance := summarizer.NewSummarizer(svcCtx.LLMClient, svcCtx.GmailClient, converter)
	orchestrator := triage.NewOrchestrator(
		svcCtx.GmailClient,
		triage.NewClassifier(svcCtx.LLMClient),
		triage.NewScorer(svcCtx.LLMClient),
		summarizerInstance,
		model.NewCacheAdapter(svcCtx.SummaryCacheModel),
		&c.Triage,
	)

	if *draftMessage != "" {
		composeDraft(svcCtx, *draftMessage)
		return
	}
	if *runOnce {
		runTriageOnce(c, orchestrator)
		return
	}

	notifierInstance := notify.NewNotifier(svcCtx.GmailClient, &c.Triage)
	schedulerInstance := scheduler.NewScheduler(
		orchestrator,
		notifierInstance,
		svcCtx.TriageRunModel,
		svcCtx.SummaryCacheModel,
		&c.Triage,
	)
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] failed to start scheduler: %s", err)
	}

	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	logger.Infof("shutting down...")
	schedulerInstance.Stop()
	logger.Infof("service stopped")
}

// runTriageOnce executes a single triage pass and prints the report to stdout.
func runTriageOnce(c *config.Config, orchestrator *triage.Orchestrator) {
	windowHours := c.Triage.TimeWindowHours
	if windowHours <= 0 {
		windowHours = 24
	}
	window := time.Duration(windowHours) * time.Hour

	report, err := orchestrator.Run(context.Background(), window)
	if err != nil {
		logger.Fatalf("triage run failed: %v", err)
	}
	if report.Empty() {
		fmt.Printf("no messages to triage in the last %d hours\n", windowHours)
		return
	}
	fmt.Println(triage.FormatReportForDisplay(report, fmt.Sprintf("last %d hours", windowHours)))
}

// composeDraft generates and saves a reply draft for one message.
func composeDraft(svcCtx *svc.ServiceContext, messageID string) {
	ctx := context.Background()

	msg, err := svcCtx.GmailClient.GetMessage(ctx, messageID)
	if err != nil {
		logger.Fatalf("failed to fetch message %s: %v", messageID, err)
	}

	composer := draft.NewComposer(
		svcCtx.LLMClient,
		svcCtx.GmailClient,
		model.NewDraftStoreAdapter(svcCtx.DraftModel),
	)
	text, err := composer.ComposeAndSave(ctx, msg)
	if err != nil {
		if text != "" {
			// the reply was generated but could not be saved, don't lose it
			fmt.Println(text)
		}
		logger.Fatalf("failed to compose draft for message %s: %v", messageID, err)
	}

	fmt.Printf("draft saved for %q\n%s\n", msg.Subject, text)
}
