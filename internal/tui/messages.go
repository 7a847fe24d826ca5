package tui

import (
	"time"

	"github.com/MKhiriev/go-trackspense/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the root model to show Page.
type NavigateTo struct {
	Page string
}

// toastMsg shows a notification line for its duration.
type toastMsg struct {
	notification models.Notification
}

type clearToastMsg struct {
	id int
}

type authDoneMsg struct {
	user models.UserSummary
	err  error
}

type loggedOutMsg struct {
	err error
}

type expensesLoadedMsg struct {
	items []models.Expense
	err   error
}

type expenseAddedMsg struct {
	expense models.Expense
	err     error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func notify(message string, severity models.Severity, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{notification: models.Notification{Message: message, Severity: severity, Duration: duration}}
	}
}
