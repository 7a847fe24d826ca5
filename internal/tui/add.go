package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/service"
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	addAmount = iota
	addCategory
	addDescription
	addDate
)

// AddExpenseModel is the add-expense form. Validation happens in the
// expense service; its messages are shown under the form.
type AddExpenseModel struct {
	ctx      context.Context
	expenses service.ExpenseService

	form       form
	submitting bool
	errMsg     string
}

func NewAddExpenseModel(ctx context.Context, expenses service.ExpenseService) *AddExpenseModel {
	return &AddExpenseModel{
		ctx:      ctx,
		expenses: expenses,
		form: newForm(
			field{label: "Amount", placeholder: "0.00", charLimit: 16},
			field{label: "Category", placeholder: "FOOD", charLimit: 32},
			field{label: "Description", placeholder: "optional", charLimit: 128},
			field{label: "Date", placeholder: models.DateLayout + " (today if empty)", charLimit: 10},
		),
	}
}

func (m *AddExpenseModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	return textinput.Blink
}

func (m *AddExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(expenseAddedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		return m, tea.Batch(
			notify(app.MsgExpenseAdded, models.SeveritySuccess, defaultToastDuration),
			navigate(ViewDashboard),
		)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(ViewDashboard)
		case keyMsg.Type == tea.KeyTab, keyMsg.Type == tea.KeyDown:
			m.form.focusNext()
			return m, nil
		case keyMsg.Type == tea.KeyShiftTab, keyMsg.Type == tea.KeyUp:
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdAdd(models.ExpenseForm{
				Amount:      m.form.value(addAmount),
				Category:    m.form.value(addCategory),
				Description: m.form.value(addDescription),
				Date:        m.form.value(addDate),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *AddExpenseModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return renderPage("ADD EXPENSE", b.String(), "enter: save │ tab: next field │ esc: dashboard")
}

func (m *AddExpenseModel) capturesInput() bool { return true }

func (m *AddExpenseModel) cmdAdd(expense models.ExpenseForm) tea.Cmd {
	ctx := m.ctx
	expenses := m.expenses
	return func() tea.Msg {
		created, err := expenses.Add(ctx, expense)
		return expenseAddedMsg{expense: created, err: err}
	}
}
