package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View names besides the login view, whose name is configurable.
const (
	ViewSignup    = "signup"
	ViewDashboard = "dashboard"
	ViewExpenses  = "expenses"
	ViewReports   = "reports"
	ViewAdd       = "add"
)

const defaultToastDuration = 2 * time.Second

// page is a single view of the client.
type page interface {
	tea.Model
	// capturesInput reports whether the page has a focused text input, in
	// which case global letter hotkeys are passed to the page.
	capturesInput() bool
}

// RootModel is the TUI router:
// 1) keeps the active page and the router in sync
// 2) handles global hotkeys and NavigateTo messages
// 3) guards protected pages with RequireAuth
// 4) shows toasts
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	auth      service.AuthService
	appInfo   service.AppInfoService
	router    *Router
	loginView string

	pages   map[string]page
	current string

	toast         toastState
	buildInfo     models.AppBuildInfo
	serverVersion string

	showBuildInfo bool
}

// NewRootModel registers pages and opens start. Pages other than the
// login and signup views require a session.
func NewRootModel(ctx context.Context, auth service.AuthService, appInfo service.AppInfoService, router *Router, pages map[string]page, loginView, start string, buildInfo models.AppBuildInfo) *RootModel {
	r := &RootModel{
		ctx:       ctx,
		auth:      auth,
		appInfo:   appInfo,
		router:    router,
		loginView: loginView,
		pages:     pages,
		buildInfo: buildInfo,
	}

	if r.isProtected(start) && auth.RequireAuth(ctx) != nil {
		start = loginView
	}
	r.current = start
	router.set(start)
	return r
}

func (r *RootModel) Init() tea.Cmd {
	p, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return p.Init()
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if p, ok := r.pages[r.current]; ok && !p.capturesInput() {
			if handled, cmd := r.handleHotkey(msg); handled {
				return r, cmd
			}
		}
	case NavigateTo:
		return r, r.open(msg.Page)
	case toastMsg:
		return r, r.showToast(msg.notification)
	case serverVersionMsg:
		if msg.err != nil {
			r.serverVersion = "unavailable"
			return r, nil
		}
		r.serverVersion = msg.version
		return r, nil
	case clearToastMsg:
		if msg.id == r.toast.id {
			r.toast.visible = false
		}
		return r, nil
	case loggedOutMsg:
		if msg.err != nil {
			return r, notify(msg.err.Error(), models.SeverityError, defaultToastDuration)
		}
		return r, tea.Batch(
			notify(app.MsgLoggedOut, models.SeverityInfo, defaultToastDuration),
			r.open(r.loginView),
		)
	}

	p, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := p.Update(msg)
	if next, ok := updated.(page); ok {
		r.pages[r.current] = next
	}
	return r, cmd
}

func (r *RootModel) View() string {
	var body string
	switch p, ok := r.pages[r.current]; {
	case r.showBuildInfo:
		body = renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	case ok:
		body = p.View()
	default:
		body = renderPage("TRACKSPENSE", "", "")
	}

	if line := r.toast.View(); line != "" {
		body = line + "\n\n" + body
	}
	return appStyle.Render(body)
}

// Current returns the page on screen.
func (r *RootModel) Current() string {
	return r.current
}

func (r *RootModel) handleHotkey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return true, tea.Quit
	case key.Matches(msg, keys.version):
		r.showBuildInfo = true
		r.serverVersion = ""
		return true, r.cmdServerVersion()
	}

	if !r.isProtected(r.current) {
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.dashboard):
		return true, r.open(ViewDashboard)
	case key.Matches(msg, keys.expenses):
		return true, r.open(ViewExpenses)
	case key.Matches(msg, keys.reports):
		return true, r.open(ViewReports)
	case key.Matches(msg, keys.add):
		return true, r.open(ViewAdd)
	case key.Matches(msg, keys.logout):
		return true, r.cmdLogout()
	}
	return false, nil
}

// open shows view. Protected views fall back to the login view when there
// is no session; opening the view on screen does nothing.
func (r *RootModel) open(view string) tea.Cmd {
	if _, ok := r.pages[view]; !ok {
		return nil
	}

	var cmds []tea.Cmd
	if r.isProtected(view) && r.auth.RequireAuth(r.ctx) != nil {
		if r.current == r.loginView {
			r.router.set(r.loginView)
			return nil
		}
		view = r.loginView
		cmds = append(cmds, notify(app.MsgLoginRequired, models.SeverityWarning, defaultToastDuration))
	}

	r.router.set(view)
	if view == r.current {
		return tea.Batch(cmds...)
	}

	r.current = view
	r.showBuildInfo = false
	cmds = append(cmds, r.pages[view].Init())
	return tea.Batch(cmds...)
}

func (r *RootModel) showToast(n models.Notification) tea.Cmd {
	if n.Duration <= 0 {
		n.Duration = defaultToastDuration
	}

	r.toast.id++
	r.toast.notification = n
	r.toast.visible = true

	id := r.toast.id
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (r *RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (r *RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	appInfo := r.appInfo
	return func() tea.Msg {
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (r *RootModel) isProtected(view string) bool {
	return view != r.loginView && view != ViewSignup
}
