// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	expensesSearch = iota
	expensesFrom
	expensesTo
)

// ExpensesModel lists expenses with a search box and an optional date
// range. The range is applied on the server; search filters the loaded
// list as the user types.
type ExpensesModel struct {
	ctx      context.Context
	expenses service.ExpenseService

	form     form
	loading  bool
	items    []models.Expense
	filtered []models.Expense
	errMsg   string
}

func NewExpensesModel(ctx context.Context, expenses service.ExpenseService) *ExpensesModel {
	return &ExpensesModel{
		ctx:      ctx,
		expenses: expenses,
		form: newForm(
			field{label: "Search", placeholder: "description or category", charLimit: 64},
			field{label: "From", placeholder: models.DateLayout, charLimit: 10},
			field{label: "To", placeholder: models.DateLayout, charLimit: 10},
		),
	}
}

func (m *ExpensesModel) Init() tea.Cmd {
	m.form.reset()
	m.loading = true
	m.errMsg = ""
	return tea.Batch(textinput.Blink, cmdLoadExpenses(m.ctx, m.expenses))
}

func (m *ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.MsgExpensesLoadFailed
			m.items, m.filtered = nil, nil
			return m, notify(app.MsgExpensesLoadFailed, models.SeverityError, defaultToastDuration)
		}
		m.errMsg = ""
		m.items = msg.items
		m.applySearch()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(ViewDashboard)
		case msg.Type == tea.KeyTab:
			m.form.focusNext()
			return m, nil
		case msg.Type == tea.KeyShiftTab:
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.reload()
		}
	}

	cmd := m.form.update(msg)
	m.applySearch()
	return m, cmd
}

func (m *ExpensesModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	default:
		b.WriteString(fmt.Sprintf("%d of %d expenses\n\n", len(m.filtered), len(m.items)))
		b.WriteString(renderExpenseRows(m.filtered))
	}

	return renderPage("EXPENSES", b.String(), "type to search │ tab: next field │ enter: apply date range │ esc: dashboard")
}

func (m *ExpensesModel) capturesInput() bool { return true }

func (m *ExpensesModel) applySearch() {
	m.filtered = service.Search(m.items, m.form.value(expensesSearch))
}

// reload fetches every expense, or only those in the date range when both
// bounds are filled in.
func (m *ExpensesModel) reload() tea.Cmd {
	fromText := strings.TrimSpace(m.form.value(expensesFrom))
	toText := strings.TrimSpace(m.form.value(expensesTo))
	if fromText == "" && toText == "" {
		m.loading = true
		return cmdLoadExpenses(m.ctx, m.expenses)
	}

	from, errFrom := time.ParseInLocation(models.DateLayout, fromText, time.Local)
	to, errTo := time.ParseInLocation(models.DateLayout, toText, time.Local)
	if errFrom != nil || errTo != nil {
		m.errMsg = app.MsgInvalidDate
		return nil
	}
	// inclusive of the whole last day
	to = to.Add(24*time.Hour - time.Second)

	m.loading = true
	m.errMsg = ""
	ctx := m.ctx
	expenses := m.expenses
	return func() tea.Msg {
		items, err := expenses.ByDate(ctx, from, to)
		return expensesLoadedMsg{items: items, err: err}
	}
}
