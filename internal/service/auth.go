package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/models"
)

type authService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger
}

func NewAuthService(serverAdapter adapter.ServerAdapter, session SessionManager, logger *logger.Logger) AuthService {
	return &authService{adapter: serverAdapter, session: session, logger: logger}
}

func (a *authService) Signup(ctx context.Context, form models.SignupForm) (models.UserSummary, error) {
	email := strings.TrimSpace(form.Email)
	if email == "" || form.Password == "" {
		return models.UserSummary{}, ErrValidationEmailPassword
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.UserSummary{}, ErrValidationEmail
	}
	if form.Password != form.ConfirmPassword {
		return models.UserSummary{}, ErrValidationPasswordsMatch
	}

	userName := strings.TrimSpace(form.UserName)
	if userName == "" {
		userName = userNameFromEmail(email)
	}

	err := a.adapter.Register(ctx, models.User{
		UserName: userName,
		Email:    email,
		Password: form.Password,
	})
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}
	a.logger.Info().Str("func", "*authService.Signup").Msg("account registered, logging in")

	return a.Login(ctx, models.Credentials{Email: email, Password: form.Password})
}

func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.UserSummary, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return models.UserSummary{}, ErrValidationEmailPassword
	}

	resp, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		err = mapAdapterError(err)
		// a 401 from the login endpoint always means wrong credentials
		if errors.Is(err, adapter.ErrUnauthorized) {
			err = ErrInvalidCredentials
		}
		return models.UserSummary{}, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return models.UserSummary{}, ErrNoTokenIssued
	}

	if err = a.session.Save(ctx, resp.Token, resp.Email); err != nil {
		return models.UserSummary{}, fmt.Errorf("store session: %w", err)
	}

	email := resp.Email
	if email == "" {
		email = credentials.Email
	}
	return models.UserSummary{Email: email, IsAuthenticated: true}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (models.UserSummary, bool) {
	if !a.session.IsAuthenticated(ctx) {
		return models.UserSummary{}, false
	}

	user, ok := a.session.User(ctx)
	if !ok {
		return models.UserSummary{IsAuthenticated: true}, true
	}
	user.IsAuthenticated = true
	return user, true
}

func (a *authService) RequireAuth(ctx context.Context) error {
	if !a.session.IsAuthenticated(ctx) {
		return ErrNotAuthenticated
	}
	return nil
}

func userNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
