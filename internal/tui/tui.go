// Package tui is the terminal interface of the trackspense client: a Bubble
// Tea program with login, signup, dashboard, expenses, reports and
// add-expense views.
//
// [Router] and [Toaster] let code outside the UI goroutine, such as the
// fetch client and the session watcher, switch views and show
// notifications.
package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	ctx     context.Context
	root    *RootModel
	router  *Router
	toaster *Toaster
	logger  *logger.Logger
}

// New builds the views. The dashboard opens first when a session is stored,
// the login view otherwise.
func New(ctx context.Context, auth service.AuthService, expenses service.ExpenseService, appInfo service.AppInfoService, appCfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	loginView := appCfg.LoginView
	pages := map[string]page{
		loginView:     NewLoginModel(ctx, auth),
		ViewSignup:    NewSignupModel(ctx, auth, loginView),
		ViewDashboard: NewDashboardModel(ctx, auth, expenses),
		ViewExpenses:  NewExpensesModel(ctx, expenses),
		ViewReports:   NewReportsModel(ctx, expenses),
		ViewAdd:       NewAddExpenseModel(ctx, expenses),
	}

	router := NewRouter(loginView)
	return &TUI{
		ctx:     ctx,
		root:    NewRootModel(ctx, auth, appInfo, router, pages, loginView, ViewDashboard, buildInfo),
		router:  router,
		toaster: NewToaster(adapter.NewAlertNotifier(os.Stderr)),
		logger:  logger,
	}
}

// Navigator returns the router to hand to the fetch client and workers.
func (t *TUI) Navigator() adapter.Navigator {
	return t.router
}

// Notifier returns the toast notifier to hand to the fetch client and
// workers.
func (t *TUI) Notifier() adapter.Notifier {
	return t.toaster
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run() error {
	program := tea.NewProgram(t.root, tea.WithAltScreen(), tea.WithContext(t.ctx))
	t.router.attach(program.Send)
	t.toaster.attach(program.Send)
	defer func() {
		t.router.attach(nil)
		t.toaster.attach(nil)
	}()

	t.logger.Info().Str("view", t.router.Current()).Msg("starting TUI")
	if _, err := program.Run(); err != nil {
		if t.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
