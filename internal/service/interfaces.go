// Package service implements the client use cases on top of the expense API
// adapter and the local session.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trackspense/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager is the part of the session the services read and write.
type SessionManager interface {
	// Save stores the token and a user summary for email, skipping empty
	// values.
	Save(ctx context.Context, token, email string) error
	// Clear removes the token and the user summary.
	Clear(ctx context.Context) error
	// User returns the cached user summary.
	User(ctx context.Context) (models.UserSummary, bool)
	// IsAuthenticated reports whether a token is stored.
	IsAuthenticated(ctx context.Context) bool
}

// AuthService covers account creation and the session lifecycle.
type AuthService interface {
	// Signup validates the form, registers the account and logs it in.
	// A user name left empty is derived from the local part of the email.
	Signup(ctx context.Context, form models.SignupForm) (models.UserSummary, error)

	// Login exchanges credentials for a token and stores the session.
	Login(ctx context.Context, credentials models.Credentials) (models.UserSummary, error)

	// Logout clears the local session. The server is not contacted.
	Logout(ctx context.Context) error

	// CurrentUser returns the signed-in user. ok is false without a token.
	CurrentUser(ctx context.Context) (user models.UserSummary, ok bool)

	// RequireAuth returns ErrNotAuthenticated when no token is stored.
	// Views that show user data call it before loading.
	RequireAuth(ctx context.Context) error
}

// ExpenseService covers reading and recording expenses.
type ExpenseService interface {
	// Add validates form and records the expense.
	Add(ctx context.Context, form models.ExpenseForm) (models.Expense, error)

	// All lists every expense of the current user.
	All(ctx context.Context) ([]models.Expense, error)

	// ByDate lists expenses between start and end inclusive.
	ByDate(ctx context.Context, start, end time.Time) ([]models.Expense, error)
}

// AppInfoService reports versions for the about window.
type AppInfoService interface {
	// ServerVersion asks the API for its version.
	ServerVersion(ctx context.Context) (string, error)
}
