package adapter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-trackspense/models"
)

// alertNotifier writes every message to w. It is the fallback used when no
// UI notifier is attached.
type alertNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAlertNotifier returns a [Notifier] writing one line per message to w,
// typically os.Stderr.
func NewAlertNotifier(w io.Writer) Notifier {
	return &alertNotifier{w: w}
}

func (a *alertNotifier) Notify(message string, _ models.Severity, _ time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintln(a.w, message)
}
