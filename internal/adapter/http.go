package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/models"
)

const (
	registerPath      = "/users/register"
	loginPath         = "/users/login"
	addExpensePath    = "/expenses/add"
	allExpensesPath   = "/expenses/all"
	expensesByDateFmt = "/expenses/user/date?start=%s&end=%s"
	versionPath       = "/version"
)

var isoDateTime = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

type httpServerAdapter struct {
	fetch  *FetchClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter] on top of fetch.
func NewHTTPServerAdapter(fetch *FetchClient, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{fetch: fetch, logger: logger}
}

// Register implements [ServerAdapter]. It POSTs the user to
// POST /users/register without authentication.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	_, err := h.fetch.Do(ctx, Request{
		Path:   registerPath,
		Method: http.MethodPost,
		Body:   user,
	})
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /users/login. The response fields are empty when the server
// answered with something other than JSON.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	res, err := h.fetch.Do(ctx, Request{
		Path:                  loginPath,
		Method:                http.MethodPost,
		Body:                  credentials,
		RequiresAuth:          false,
		RedirectOnAuthFailure: false,
	})
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	var out models.LoginResponse
	if res.Kind == ResultJSON {
		if err = res.Decode(&out); err != nil {
			return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
		}
	}
	return out, nil
}

// AddExpense implements [ServerAdapter] via POST /expenses/add.
func (h *httpServerAdapter) AddExpense(ctx context.Context, expense models.ExpenseRequest) (models.Expense, error) {
	res, err := h.fetch.Do(ctx, authed(Request{
		Path:   addExpensePath,
		Method: http.MethodPost,
		Body:   expense,
	}))
	if err != nil {
		return models.Expense{}, fmt.Errorf("add expense request: %w", err)
	}

	var created models.Expense
	if res.Kind == ResultJSON {
		if err = res.Decode(&created); err != nil {
			h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.AddExpense").Msg("server response is not an expense")
			return models.Expense{}, nil
		}
	}
	return created, nil
}

// GetAllExpenses implements [ServerAdapter] via GET /expenses/all.
func (h *httpServerAdapter) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	res, err := h.fetch.Do(ctx, authed(Request{Path: allExpensesPath}))
	if err != nil {
		return nil, fmt.Errorf("get all expenses request: %w", err)
	}
	return decodeExpenses(res)
}

// GetExpensesByDate implements [ServerAdapter] via
// GET /expenses/user/date?start=&end=. Bounds that do not look like ISO-8601
// date-times are logged and sent anyway; the server has the final say.
func (h *httpServerAdapter) GetExpensesByDate(ctx context.Context, start, end string) ([]models.Expense, error) {
	if !isoDateTime.MatchString(start) || !isoDateTime.MatchString(end) {
		h.logger.Warn().
			Str("start", start).
			Str("end", end).
			Msg("start/end should be ISO-8601 with time, e.g. 2025-09-27T10:00:00")
	}

	path := fmt.Sprintf(expensesByDateFmt, url.QueryEscape(start), url.QueryEscape(end))
	res, err := h.fetch.Do(ctx, authed(Request{Path: path}))
	if err != nil {
		return nil, fmt.Errorf("get expenses by date request: %w", err)
	}
	return decodeExpenses(res)
}

// ServerVersion implements [ServerAdapter] via GET /version. A JSON string
// body is unquoted; any other body is returned as text.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	res, err := h.fetch.Do(ctx, Request{Path: versionPath})
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}

	if res.Kind == ResultJSON {
		var version string
		if err = res.Decode(&version); err == nil {
			return version, nil
		}
	}
	return strings.TrimSpace(res.Text()), nil
}

// authed marks req as an authenticated call that expires the session on
// 401/403.
func authed(req Request) Request {
	req.RequiresAuth = true
	req.RedirectOnAuthFailure = true
	return req
}

func decodeExpenses(res Result) ([]models.Expense, error) {
	if res.Kind != ResultJSON {
		return nil, nil
	}

	var list models.ExpenseList
	if err := res.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return list, nil
}
