package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportsModel shows spending totals per category and per month.
type ReportsModel struct {
	ctx      context.Context
	expenses service.ExpenseService
	copy     func(string) error

	loading bool
	report  models.Report
	errMsg  string
}

func NewReportsModel(ctx context.Context, expenses service.ExpenseService) *ReportsModel {
	return &ReportsModel{ctx: ctx, expenses: expenses, copy: clipboard.WriteAll}
}

func (m *ReportsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return cmdLoadExpenses(m.ctx, m.expenses)
}

func (m *ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.MsgExpensesLoadFailed
			return m, notify(app.MsgExpensesLoadFailed, models.SeverityError, defaultToastDuration)
		}
		m.report = service.Summarize(msg.items)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m, notify(fmt.Sprintf("Copy failed: %v", msg.err), models.SeverityError, defaultToastDuration)
		}
		return m, notify(app.MsgReportCopied, models.SeveritySuccess, defaultToastDuration)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy) && !m.loading && m.errMsg == "":
			return m, m.cmdCopy(formatReport(m.report))
		case key.Matches(msg, keys.refresh) && !m.loading:
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *ReportsModel) View() string {
	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case m.errMsg != "":
		body = errorStyle.Render(m.errMsg)
	default:
		body = formatReport(m.report)
	}
	return renderPage("REPORTS", body, "c: copy │ f: refresh │ d: dashboard │ e: expenses │ a: add │ o: log out")
}

func (m *ReportsModel) capturesInput() bool { return false }

func (m *ReportsModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

// formatReport renders report as plain text, the same text that is copied
// to the clipboard.
func formatReport(report models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total:        %s\n", service.FormatNaira(report.Total))
	fmt.Fprintf(&b, "Average:      %s\n", service.FormatNaira(report.Average))
	fmt.Fprintf(&b, "Count:        %d\n", report.Count)
	fmt.Fprintf(&b, "Top category: %s\n", report.TopCategory)

	b.WriteString("\nBy category\n")
	if len(report.ByCategory) == 0 {
		b.WriteString("-\n")
	}
	for _, c := range report.ByCategory {
		fmt.Fprintf(&b, "%-16s %14s\n", fitText(c.Category, 16), service.FormatNaira(c.Amount))
	}

	b.WriteString("\nBy month\n")
	if len(report.Monthly) == 0 {
		b.WriteString("-\n")
	}
	for _, mo := range report.Monthly {
		fmt.Fprintf(&b, "%-16s %14s\n", mo.Month, service.FormatNaira(mo.Amount))
	}

	return strings.TrimRight(b.String(), "\n")
}
