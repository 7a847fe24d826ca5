// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/models"
)

// SessionWatcher expires a stored JWT session once its "exp" claim has
// passed, without waiting for the server to reject a request. Opaque tokens
// are left alone.
type SessionWatcher struct {
	session   SessionClock
	notifier  adapter.Notifier
	navigator adapter.Navigator
	loginView string
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewSessionWatcher(
	session SessionClock,
	notifier adapter.Notifier,
	navigator adapter.Navigator,
	appCfg config.ClientApp,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) *SessionWatcher {
	return &SessionWatcher{
		session:   session,
		notifier:  notifier,
		navigator: navigator,
		loginView: appCfg.LoginView,
		interval:  workersCfg.SessionCheckInterval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run checks the session every interval until ctx is cancelled.
func (w *SessionWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session watcher started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session watcher stopped")
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check expires the session when its token has run out and reports whether
// it did. The user is notified and sent to the login view unless already
// there.
func (w *SessionWatcher) Check(ctx context.Context) bool {
	expiresAt, ok := w.session.ExpiresAt(ctx)
	if !ok || w.now().Before(expiresAt) {
		return false
	}

	w.logger.Info().Time("expires_at", expiresAt).Msg("session token expired")
	if err := w.session.Clear(ctx); err != nil {
		w.logger.Err(err).Str("func", "*SessionWatcher.Check").Msg("failed to clear session")
	}

	if w.navigator != nil && w.navigator.Current() == w.loginView {
		return true
	}

	n := models.SessionExpiredNotification
	if w.notifier != nil {
		w.notifier.Notify(n.Message, n.Severity, n.Duration)
	}
	if w.navigator != nil {
		w.navigator.Navigate(w.loginView)
	}
	return true
}
