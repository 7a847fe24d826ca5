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
	signupUserName = iota
	signupEmail
	signupPassword
	signupConfirm
)

// SignupModel is the signup view. A successful signup also logs the user in.
type SignupModel struct {
	ctx       context.Context
	auth      service.AuthService
	loginView string

	form       form
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.AuthService, loginView string) *SignupModel {
	return &SignupModel{
		ctx:       ctx,
		auth:      auth,
		loginView: loginView,
		form: newForm(
			field{label: "Name", placeholder: "optional", charLimit: 64},
			field{label: "Email", placeholder: "you@example.com", charLimit: 254},
			field{label: "Password", placeholder: "password", charLimit: 256, secret: true},
			field{label: "Confirm password", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

func (m *SignupModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Batch(
			notify(app.MsgSignupSuccess, models.SeveritySuccess, defaultToastDuration),
			navigate(ViewDashboard),
		)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.switchTo), key.Matches(keyMsg, keys.esc):
			return m, navigate(m.loginView)
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
			return m, m.cmdSignup(models.SignupForm{
				UserName:        strings.TrimSpace(m.form.value(signupUserName)),
				Email:           strings.TrimSpace(m.form.value(signupEmail)),
				Password:        m.form.value(signupPassword),
				ConfirmPassword: m.form.value(signupConfirm),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.submitting {
		b.WriteString("\n\nCreating account...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return renderPage("SIGN UP", b.String(), "enter: sign up │ tab: next field │ esc: back to log in")
}

func (m *SignupModel) capturesInput() bool { return true }

func (m *SignupModel) cmdSignup(signup models.SignupForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		user, err := auth.Signup(ctx, signup)
		return authDoneMsg{user: user, err: err}
	}
}
