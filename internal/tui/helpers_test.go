package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

// collect runs cmd and returns the messages it produced, flattening
// batches. Commands that do not finish quickly, such as toast timers, are
// dropped.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(300 * time.Millisecond):
		return nil
	}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func findToast(msgs []tea.Msg, message string) (toastMsg, bool) {
	for _, m := range msgs {
		if v, ok := m.(toastMsg); ok && v.notification.Message == message {
			return v, true
		}
	}
	return toastMsg{}, false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
)

type fixture struct {
	ctx      context.Context
	auth     *mock.MockAuthService
	expenses *mock.MockExpenseService
	appInfo  *mock.MockAppInfoService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	return fixture{
		ctx:      context.Background(),
		auth:     mock.NewMockAuthService(ctrl),
		expenses: mock.NewMockExpenseService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
}
