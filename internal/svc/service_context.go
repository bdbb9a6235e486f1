package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/ent"
	"github.com/fachebot/inbox-hero/internal/gmail"
	"github.com/fachebot/inbox-hero/internal/llm"
	"github.com/fachebot/inbox-hero/internal/logger"
	"github.com/fachebot/inbox-hero/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config            *config.Config
	DbClient          *ent.Client
	TransportProxy    *http.Transport
	TriageRunModel    *model.TriageRunModel
	SummaryCacheModel *model.SummaryCacheModel
	DraftModel        *model.DraftModel
	LLMClient         *llm.Client
	GmailClient       *gmail.Client
}

func NewServiceContext(c *config.Config) *ServiceContext {
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("failed to open database, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("failed to create database schema, %v", err)
	}

	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("failed to create SOCKS5 proxy, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	gmailClient, err := gmail.NewClient(context.Background(), &c.Gmail)
	if err != nil {
		logger.Fatalf("failed to create Gmail client, %v", err)
	}

	svcCtx := &ServiceContext{
		Config:            c,
		DbClient:          client,
		TransportProxy:    transportProxy,
		TriageRunModel:    model.NewTriageRunModel(client.TriageRun),
		SummaryCacheModel: model.NewSummaryCacheModel(client.SummaryCache),
		DraftModel:        model.NewDraftModel(client.Draft),
		LLMClient:         llm.NewClient(&c.LLM, transportProxy),
		GmailClient:       gmailClient,
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("failed to close database, %v", err)
	}
}
