package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/internal/session"
	"github.com/MKhiriev/go-trackspense/internal/store"
	"github.com/MKhiriev/go-trackspense/internal/tui"
	"github.com/MKhiriev/go-trackspense/internal/workers"
	"github.com/MKhiriev/go-trackspense/models"
)

// App owns every long-lived component of the client.
type App struct {
	storages *store.Storages
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local session store and wires the transport, services,
// UI and background workers. ctx bounds the whole run: cancelling it stops
// the UI and the workers.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.App.SecretKey, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	sessionManager := session.NewManager(storages.Session, log)

	fetch, err := adapter.NewFetchClient(cfg.Adapter, cfg.App, sessionManager, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create fetch client: %w", err)
	}
	serverAdapter := adapter.NewHTTPServerAdapter(fetch, log)

	authService := service.NewAuthService(serverAdapter, sessionManager, log)
	expenseService := service.NewExpenseService(serverAdapter, log)
	appInfoService := service.NewAppInfoService(serverAdapter, log)

	ui := tui.New(ctx, authService, expenseService, appInfoService, cfg.App, buildInfo, log)
	fetch.SetNotifier(ui.Notifier())
	fetch.SetNavigator(ui.Navigator())

	watcher := workers.NewSessionWatcher(sessionManager, ui.Notifier(), ui.Navigator(), cfg.App, cfg.Workers, log)

	return &App{
		storages: storages,
		ui:       ui,
		workers:  workers.NewWorkers(watcher),
		logger:   log,
	}, nil
}

// Run implements [Client]. Workers run for as long as the UI does.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(ctx)
	}()

	err := a.ui.Run()

	cancel()
	wg.Wait()

	if closeErr := a.storages.Close(); closeErr != nil {
		a.logger.Err(closeErr).Msg("failed to close local storage")
	}
	return err
}
