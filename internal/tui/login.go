// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	loginEmail = iota
	loginPassword
)

// LoginModel is the login view. It renders email and password inputs and
// dispatches an async login on submit. On success it notifies and opens the
// dashboard.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email input focused.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			field{label: "Email", placeholder: "you@example.com", charLimit: 254},
			field{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. The email typed before is kept so a user sent
// back here after an expired session only retypes the password.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset(loginEmail)
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authDoneMsg: finishes a submit; on success notifies and opens the dashboard.
//   - tab, shift+tab: move focus.
//   - enter: dispatches the login.
//   - ctrl+n: opens the signup view.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Batch(
			notify(app.MsgLoginSuccess, models.SeveritySuccess, defaultToastDuration),
			navigate(ViewDashboard),
		)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.switchTo):
			return m, navigate(ViewSignup)
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
			return m, m.cmdLogin(models.Credentials{
				Email:    strings.TrimSpace(m.form.value(loginEmail)),
				Password: m.form.value(loginPassword),
			})
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.submitting {
		b.WriteString("\n\nLogging in...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return renderPage("LOG IN", b.String(), "enter: log in │ tab: next field │ ctrl+n: sign up")
}

func (m *LoginModel) capturesInput() bool { return true }

func (m *LoginModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, credentials)
		return authDoneMsg{user: user, err: err}
	}
}
