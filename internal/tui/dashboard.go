package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel shows the spending total and the latest expenses.
type DashboardModel struct {
	ctx      context.Context
	auth     service.AuthService
	expenses service.ExpenseService

	spinner spinner.Model
	loading bool
	user    models.UserSummary
	report  models.Report
	errMsg  string
}

func NewDashboardModel(ctx context.Context, auth service.AuthService, expenses service.ExpenseService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{ctx: ctx, auth: auth, expenses: expenses, spinner: s}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.user, _ = m.auth.CurrentUser(m.ctx)
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, cmdLoadExpenses(m.ctx, m.expenses))
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.MsgDashboardLoadFailed
			return m, notify(app.MsgDashboardLoadFailed, models.SeverityError, defaultToastDuration)
		}
		m.report = service.Summarize(msg.items)
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		if key.Matches(msg, keys.refresh) && !m.loading {
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder
	if m.user.Email != "" {
		b.WriteString("Signed in as ")
		b.WriteString(m.user.Email)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	default:
		b.WriteString("Total spent: ")
		b.WriteString(amountStyle.Render(service.FormatNaira(m.report.Total)))
		b.WriteString(fmt.Sprintf("\nExpenses:    %d\n\n", m.report.Count))
		b.WriteString("Recent expenses\n")
		b.WriteString(renderExpenseRows(m.report.Recent))
	}

	return renderPage("DASHBOARD", b.String(), "e: expenses │ a: add │ r: reports │ f: refresh │ o: log out │ v: version │ q: quit")
}

func (m *DashboardModel) capturesInput() bool { return false }

func cmdLoadExpenses(ctx context.Context, expenses service.ExpenseService) tea.Cmd {
	return func() tea.Msg {
		items, err := expenses.All(ctx)
		return expensesLoadedMsg{items: items, err: err}
	}
}

// renderExpenseRows lays expenses out as date, category, description and
// amount columns.
func renderExpenseRows(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return "No expenses yet"
	}

	var b strings.Builder
	for _, e := range expenses {
		date := "-"
		if when := e.When(); !when.IsZero() {
			date = when.Format(models.DateLayout)
		}
		b.WriteString(fmt.Sprintf("%-10s  %-14s  %-24s  %14s\n",
			date,
			fitText(valueOrDash(e.Category), 14),
			fitText(valueOrDash(e.Description), 24),
			service.FormatNaira(e.Amount),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
