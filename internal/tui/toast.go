package tui

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Toaster implements adapter.Notifier on top of the running program. Before
// the program starts, or after it stops, messages go to the fallback.
type Toaster struct {
	mu       sync.Mutex
	send     func(tea.Msg)
	fallback adapter.Notifier
}

// NewToaster returns a notifier that falls back to fallback while no
// program is attached.
func NewToaster(fallback adapter.Notifier) *Toaster {
	return &Toaster{fallback: fallback}
}

// Notify implements adapter.Notifier.
func (t *Toaster) Notify(message string, severity models.Severity, duration time.Duration) {
	t.mu.Lock()
	send := t.send
	t.mu.Unlock()

	if send == nil {
		if t.fallback != nil {
			t.fallback.Notify(message, severity, duration)
		}
		return
	}
	send(toastMsg{notification: models.Notification{Message: message, Severity: severity, Duration: duration}})
}

func (t *Toaster) attach(send func(tea.Msg)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send = send
}

// toastState is the notification currently on screen.
type toastState struct {
	id           int
	notification models.Notification
	visible      bool
}

func (s toastState) View() string {
	if !s.visible {
		return ""
	}
	return toastStyle(s.notification.Severity).Render(s.notification.Message)
}
