package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/fakeapi"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/mock"
	"github.com/MKhiriev/go-trackspense/internal/session"
	"github.com/MKhiriev/go-trackspense/internal/store"
	"github.com/MKhiriev/go-trackspense/models"
)

type stack struct {
	auth     AuthService
	expenses ExpenseService
	appInfo  AppInfoService
	session  *session.Manager
	fetch    *adapter.FetchClient
}

func newStack(t *testing.T, tokenTTL time.Duration) stack {
	t.Helper()

	api := fakeapi.NewHandler(config.FakeAPI{SignKey: "k", Issuer: "fake", TokenTTL: tokenTTL, Version: "0.9.0"}, logger.Nop())
	srv := httptest.NewServer(api.Init())
	t.Cleanup(srv.Close)

	sess := session.NewManager(store.NewMemoryKeyValueStore(), logger.Nop())
	fetch, err := adapter.NewFetchClient(
		config.ClientAdapter{HTTPAddress: srv.URL + "/api"},
		config.ClientApp{LoginView: "login"},
		sess,
		logger.Nop(),
	)
	require.NoError(t, err)
	serverAdapter := adapter.NewHTTPServerAdapter(fetch, logger.Nop())

	return stack{
		auth:     NewAuthService(serverAdapter, sess, logger.Nop()),
		expenses: NewExpenseService(serverAdapter, logger.Nop()),
		appInfo:  NewAppInfoService(serverAdapter, logger.Nop()),
		session:  sess,
		fetch:    fetch,
	}
}

func TestEndToEnd_SignupAddAndReport(t *testing.T) {
	s := newStack(t, time.Hour)
	ctx := context.Background()

	user, err := s.auth.Signup(ctx, models.SignupForm{Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.UserSummary{Email: "ada@example.com", IsAuthenticated: true}, user)
	require.NoError(t, s.auth.RequireAuth(ctx))

	today := time.Now().Format(models.DateLayout)
	for _, form := range []models.ExpenseForm{
		{Amount: "1200", Category: "FOOD", Description: "suya", Date: today},
		{Amount: "800", Category: "TRANSPORT", Date: today},
		{Amount: "300", Category: "FOOD"},
	} {
		_, err = s.expenses.Add(ctx, form)
		require.NoError(t, err)
	}

	all, err := s.expenses.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	report := Summarize(all)
	assert.Equal(t, 2300.0, report.Total)
	assert.Equal(t, "FOOD", report.TopCategory)
	assert.Equal(t, "₦2,300.00", FormatNaira(report.Total))

	found := Search(all, "SUYA")
	require.Len(t, found, 1)
	assert.Equal(t, 1200.0, found[0].Amount)

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now().Add(24 * time.Hour)
	ranged, err := s.expenses.ByDate(ctx, start, end)
	require.NoError(t, err)
	assert.Len(t, ranged, 3)
}

func TestEndToEnd_SignupTwiceFails(t *testing.T) {
	s := newStack(t, time.Hour)
	ctx := context.Background()
	form := models.SignupForm{Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"}

	_, err := s.auth.Signup(ctx, form)
	require.NoError(t, err)

	_, err = s.auth.Signup(ctx, form)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestEndToEnd_WrongPassword(t *testing.T) {
	s := newStack(t, time.Hour)
	ctx := context.Background()

	_, err := s.auth.Signup(ctx, models.SignupForm{Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.auth.Logout(ctx))

	_, err = s.auth.Login(ctx, models.Credentials{Email: "ada@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, s.auth.RequireAuth(ctx), ErrNotAuthenticated)
}

func TestEndToEnd_ExpiredTokenRedirectsToLogin(t *testing.T) {
	s := newStack(t, time.Second)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	navigator := mock.NewMockNavigator(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	s.fetch.SetNavigator(navigator)
	s.fetch.SetNotifier(notifier)

	_, err := s.auth.Signup(ctx, models.SignupForm{Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)

	// JWT expiry has one-second resolution
	time.Sleep(2100 * time.Millisecond)

	navigator.EXPECT().Current().Return("dashboard")
	notifier.EXPECT().Notify(models.SessionExpiredNotification.Message, models.SeverityWarning, 2*time.Second)
	navigator.EXPECT().Navigate("login")

	_, err = s.expenses.All(ctx)
	assert.ErrorIs(t, err, adapter.ErrSessionExpired)
	assert.ErrorIs(t, s.auth.RequireAuth(ctx), ErrNotAuthenticated)
}

func TestEndToEnd_ServerVersionOverGzip(t *testing.T) {
	s := newStack(t, time.Hour)

	version, err := s.appInfo.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.9.0", version)
}
