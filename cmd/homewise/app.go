package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/lucianookdp/HomeWise/internal/config"
	"github.com/lucianookdp/HomeWise/internal/expense"
	"github.com/lucianookdp/HomeWise/internal/gateway"
	"github.com/lucianookdp/HomeWise/internal/session"
	"github.com/lucianookdp/HomeWise/internal/storage"
)

// app wires the configured store, gateway and workflows together for
// one command invocation.
type app struct {
	cfg       *config.Config
	store     *storage.SQLiteStore
	clock     clockwork.Clock
	sessions  *session.Manager
	submitter *expense.Submitter
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	clock := clockwork.NewRealClock()
	api := gateway.NewClient(cfg.APIURL)
	sessions := session.NewManager(store, api, clock)

	return &app{
		cfg:       cfg,
		store:     store,
		clock:     clock,
		sessions:  sessions,
		submitter: expense.NewSubmitter(sessions, api),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
