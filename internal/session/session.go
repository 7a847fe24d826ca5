// Package session keeps the client session (token and cached user summary)
// in a key-value store.
//
// A token is present iff the user is considered authenticated. The user
// summary is for display only and may be missing while a token exists.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/store"
	"github.com/MKhiriev/go-trackspense/internal/utils"
	"github.com/MKhiriev/go-trackspense/models"
)

// Keys under which the session is persisted.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Manager reads and writes the session. It is safe for concurrent use as
// long as the underlying store is.
type Manager struct {
	store  store.KeyValueStore
	logger *logger.Logger
}

// NewManager returns a Manager over kv.
func NewManager(kv store.KeyValueStore, logger *logger.Logger) *Manager {
	return &Manager{store: kv, logger: logger}
}

// Token returns the stored token, or "" when there is none. Store failures
// are logged and treated as no token.
func (m *Manager) Token(ctx context.Context) string {
	token, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			m.logger.Err(err).Str("func", "*Manager.Token").Msg("failed to read session token")
		}
		return ""
	}
	return token
}

// User returns the cached user summary. ok is false when nothing usable is
// cached.
func (m *Manager) User(ctx context.Context) (models.UserSummary, bool) {
	raw, err := m.store.Get(ctx, UserKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			m.logger.Err(err).Str("func", "*Manager.User").Msg("failed to read user summary")
		}
		return models.UserSummary{}, false
	}

	var user models.UserSummary
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Warn().Err(err).Str("func", "*Manager.User").Msg("cached user summary is malformed")
		return models.UserSummary{}, false
	}
	return user, true
}

// Save stores token and a user summary for email. Empty values are not
// written, so a login response without an email leaves the summary alone.
func (m *Manager) Save(ctx context.Context, token, email string) error {
	if token != "" {
		if err := m.store.Set(ctx, TokenKey, token); err != nil {
			return fmt.Errorf("save session token: %w", err)
		}
	}

	if email != "" {
		raw, err := json.Marshal(models.UserSummary{Email: email, IsAuthenticated: true})
		if err != nil {
			return fmt.Errorf("encode user summary: %w", err)
		}
		if err = m.store.Set(ctx, UserKey, string(raw)); err != nil {
			return fmt.Errorf("save user summary: %w", err)
		}
	}

	return nil
}

// Clear removes the token and the user summary. Clearing an empty session
// is not an error; both keys are attempted even if the first fails.
func (m *Manager) Clear(ctx context.Context) error {
	return errors.Join(
		m.store.Remove(ctx, TokenKey),
		m.store.Remove(ctx, UserKey),
	)
}

// IsAuthenticated reports whether a token is stored.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Token(ctx) != ""
}

// ExpiresAt returns the expiry of a JWT session token. ok is false when
// there is no token or it carries no readable expiry.
func (m *Manager) ExpiresAt(ctx context.Context) (time.Time, bool) {
	token := m.Token(ctx)
	if token == "" {
		return time.Time{}, false
	}

	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}
