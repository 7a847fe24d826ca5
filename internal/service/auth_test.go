package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/mock"
	"github.com/MKhiriev/go-trackspense/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockServerAdapter, *mock.MockSessionManager) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)
	return NewAuthService(mockAdapter, mockSession, logger.Nop()), mockAdapter, mockSession
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "a@b.com", Password: "pw"}
	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.LoginResponse{Token: "abc", Email: "a@b.com"}, nil),
		mockSession.EXPECT().Save(ctx, "abc", "a@b.com").Return(nil),
	)

	user, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, models.UserSummary{Email: "a@b.com", IsAuthenticated: true}, user)
}

func TestAuthService_Login_TrimsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, models.Credentials{Email: "a@b.com", Password: "pw"}).
		Return(models.LoginResponse{Token: "abc"}, nil)
	mockSession.EXPECT().Save(ctx, "abc", "").Return(nil)

	user, err := svc.Login(ctx, models.Credentials{Email: "  a@b.com ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestAuthService_Login_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	for _, creds := range []models.Credentials{
		{Email: "", Password: "pw"},
		{Email: "a@b.com", Password: ""},
		{Email: "   ", Password: "pw"},
	} {
		_, err := svc.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrValidationEmailPassword)
	}
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"known body", app.MsgInvalidEmailPassword},
		{"any other body", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

			mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
				Return(models.LoginResponse{}, &adapter.HTTPError{StatusCode: 401, Status: "Unauthorized", Body: tt.body})

			_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "bad"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Email: "a@b.com"}, nil)
	// Save must not be called

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrNoTokenIssued)
}

func TestAuthService_Login_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)

	storeErr := errors.New("disk full")
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Token: "abc"}, nil)
	mockSession.EXPECT().Save(gomock.Any(), "abc", "").Return(storeErr)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthService_Login_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	netErr := errors.New("connection refused")
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, netErr)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, netErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_RegistersAndLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, models.User{UserName: "jane.doe", Email: "jane.doe@example.com", Password: "pw"}).Return(nil),
		mockAdapter.EXPECT().Login(ctx, models.Credentials{Email: "jane.doe@example.com", Password: "pw"}).
			Return(models.LoginResponse{Token: "tok", Email: "jane.doe@example.com"}, nil),
		mockSession.EXPECT().Save(ctx, "tok", "jane.doe@example.com").Return(nil),
	)

	user, err := svc.Signup(ctx, models.SignupForm{Email: "jane.doe@example.com", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.UserSummary{Email: "jane.doe@example.com", IsAuthenticated: true}, user)
}

func TestAuthService_Signup_KeepsGivenUserName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), models.User{UserName: "Jane", Email: "j@x.io", Password: "pw"}).Return(nil)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Token: "tok"}, nil)
	mockSession.EXPECT().Save(gomock.Any(), "tok", "").Return(nil)

	_, err := svc.Signup(context.Background(), models.SignupForm{UserName: " Jane ", Email: "j@x.io", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name string
		form models.SignupForm
		want error
	}{
		{"missing email", models.SignupForm{Password: "pw", ConfirmPassword: "pw"}, ErrValidationEmailPassword},
		{"missing password", models.SignupForm{Email: "a@b.com"}, ErrValidationEmailPassword},
		{"malformed email", models.SignupForm{Email: "not-an-email", Password: "pw", ConfirmPassword: "pw"}, ErrValidationEmail},
		{"passwords differ", models.SignupForm{Email: "a@b.com", Password: "pw", ConfirmPassword: "pw2"}, ErrValidationPasswordsMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Signup(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestAuthService_Signup_PasswordMismatchMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Signup(context.Background(), models.SignupForm{Email: "a@b.com", Password: "a", ConfirmPassword: "b"})
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match.", err.Error())
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&adapter.HTTPError{StatusCode: 409, Status: "Conflict", Body: app.MsgEmailAlreadyExists})
	// no login after a failed registration

	_, err := svc.Signup(context.Background(), models.SignupForm{Email: "a@b.com", Password: "pw", ConfirmPassword: "pw"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, svc.Logout(context.Background()))

	clearErr := errors.New("locked")
	mockSession.EXPECT().Clear(gomock.Any()).Return(clearErr)
	assert.ErrorIs(t, svc.Logout(context.Background()), clearErr)
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockSession := newTestAuthSvc(t, ctrl)
		mockSession.EXPECT().IsAuthenticated(gomock.Any()).Return(false)

		_, ok := svc.CurrentUser(context.Background())
		assert.False(t, ok)
	})

	t.Run("token and summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockSession := newTestAuthSvc(t, ctrl)
		mockSession.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
		mockSession.EXPECT().User(gomock.Any()).Return(models.UserSummary{Email: "a@b.com", IsAuthenticated: true}, true)

		user, ok := svc.CurrentUser(context.Background())
		require.True(t, ok)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("token without summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockSession := newTestAuthSvc(t, ctrl)
		mockSession.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
		mockSession.EXPECT().User(gomock.Any()).Return(models.UserSummary{}, false)

		user, ok := svc.CurrentUser(context.Background())
		require.True(t, ok)
		assert.True(t, user.IsAuthenticated)
		assert.Empty(t, user.Email)
	})
}

func TestAuthService_RequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().IsAuthenticated(gomock.Any()).Return(false)
	assert.ErrorIs(t, svc.RequireAuth(context.Background()), ErrNotAuthenticated)

	mockSession.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
	assert.NoError(t, svc.RequireAuth(context.Background()))
}

func TestUserNameFromEmail(t *testing.T) {
	assert.Equal(t, "jane", userNameFromEmail("jane@example.com"))
	assert.Equal(t, "nodomain", userNameFromEmail("nodomain"))
}
