// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the trackspense
// client and the expense API.
//
// [FetchClient] is the single entry point for every API call: it resolves
// URLs against the base endpoint, attaches the bearer token, encodes bodies,
// decodes responses and expires the local session when the server rejects
// it. [ServerAdapter] exposes the typed endpoints built on top of it.
//
// Error values defined in errors.go are mapped from HTTP status codes so
// callers can use [errors.Is] for transport-agnostic handling (e.g.
// [ErrConflict] for 409, [ErrSessionExpired] after a rejected session).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trackspense/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the expense API.
type ServerAdapter interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, user models.User) error

	// Login exchanges credentials for a session token. A 401 here is a
	// wrong password, not an expired session, so it never redirects.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// AddExpense records a new expense for the current user. The returned
	// expense is zero when the server does not echo it back.
	AddExpense(ctx context.Context, expense models.ExpenseRequest) (models.Expense, error)

	// GetAllExpenses lists every expense of the current user.
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)

	// GetExpensesByDate lists expenses between start and end, both
	// ISO-8601 local date-times such as "2025-09-27T10:00:00".
	GetExpensesByDate(ctx context.Context, start, end string) ([]models.Expense, error)

	// ServerVersion returns the version string the API reports.
	ServerVersion(ctx context.Context) (string, error)
}

// Session is the part of the session manager the fetch client relies on.
type Session interface {
	// Token returns the stored token or "" when there is none.
	Token(ctx context.Context) string
	// Clear removes the token and the cached user summary.
	Clear(ctx context.Context) error
}

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Notify(message string, severity models.Severity, duration time.Duration)
}

// Navigator switches between views of the client.
type Navigator interface {
	// Navigate shows view. Navigating to the current view is a no-op.
	Navigate(view string)
	// Current returns the name of the view on screen.
	Current() string
}
