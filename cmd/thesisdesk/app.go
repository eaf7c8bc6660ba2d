package main

import (
	"context"
	"fmt"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/config"
	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/notify"
	"github.com/hdngo/thesisdesk/internal/service"
	"github.com/hdngo/thesisdesk/internal/session"
	"github.com/hdngo/thesisdesk/internal/store"
)

// app bundles the wired client layers for one CLI invocation.
type app struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	adapter  *adapter.Adapter
	services *service.Services
	stores   *store.Stores
}

// newApp wires config, session storage, the HTTP adapter, services and
// stores. persist selects the session backend: the SQLite store shared
// across invocations, or a throwaway in-memory one.
func newApp(ctx context.Context, persist bool) (*app, error) {
	cfg, err := config.Get(&config.StructuredConfig{
		API:          config.API{Address: flagServer},
		JSONFilePath: flagConfig,
	})
	if err != nil {
		return nil, err
	}

	log := logger.NewCLI(flagVerbose)

	var sessStore session.Store
	if persist {
		sessStore, err = session.NewSQLiteStore(ctx, cfg.Session.DBPath, log)
		if err != nil {
			return nil, err
		}
	} else {
		sessStore = session.NewMemoryStore()
	}

	a, err := adapter.New(adapter.Config{
		BaseURL:        cfg.API.Address,
		RequestTimeout: cfg.API.RequestTimeout,
		TokenLeeway:    cfg.Session.TokenLeeway,
	}, sessStore, log, adapter.WithSessionExpiredHandler(func() {
		printError("session expired, run `thesisdesk login` again")
	}))
	if err != nil {
		return nil, err
	}

	svcs := service.NewServices(a, log)
	stores := store.NewStores(svcs, notify.NewLogNotifier(log), log)

	return &app{cfg: cfg, log: log, adapter: a, services: svcs, stores: stores}, nil
}

// newAuthedApp wires the app against the persistent session store and
// restores the remembered session. Commands that talk to protected
// endpoints go through here.
func newAuthedApp(ctx context.Context) (*app, error) {
	a, err := newApp(ctx, true)
	if err != nil {
		return nil, err
	}

	if err := a.services.Auth.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !a.services.Auth.Authenticated() {
		return nil, fmt.Errorf("not signed in, run `thesisdesk login` first")
	}
	return a, nil
}
