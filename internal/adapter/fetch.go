// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/utils"
	"github.com/MKhiriev/go-trackspense/models"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
)

// Request describes a single API call.
type Request struct {
	// Path is either an absolute http(s) URL, used verbatim, or a path
	// joined to the base endpoint with exactly one "/".
	Path string
	// Method defaults to GET.
	Method string
	// Headers override the defaults set by the client, except Authorization
	// which is always taken from the session when RequiresAuth is set.
	Headers map[string]string
	// Body is encoded to JSON unless it is a string, a byte slice, an
	// io.Reader or a scalar, which are sent as they are.
	Body any
	// RequiresAuth attaches the stored token as a bearer token. A missing
	// token silently omits the header.
	RequiresAuth bool
	// RedirectOnAuthFailure clears the session and sends the user to the
	// login view when an authenticated request gets 401 or 403.
	RedirectOnAuthFailure bool
}

// ResultKind tells how a successful response body was interpreted.
type ResultKind int

const (
	// ResultEmpty is a 204 or a body that could not be read.
	ResultEmpty ResultKind = iota
	// ResultJSON is a body served with a JSON content type.
	ResultJSON
	// ResultText is any other body.
	ResultText
)

func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "empty"
	case ResultJSON:
		return "json"
	case ResultText:
		return "text"
	default:
		return "ResultKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of a successful call.
type Result struct {
	Kind       ResultKind
	StatusCode int
	Body       []byte
}

// Decode unmarshals a JSON result into v.
func (r Result) Decode(v any) error {
	if r.Kind != ResultJSON {
		return fmt.Errorf("%w: %s result", ErrNotJSON, r.Kind)
	}
	return json.Unmarshal(r.Body, v)
}

// Text returns the raw body.
func (r Result) Text() string {
	return string(r.Body)
}

// FetchClient issues API requests on behalf of the current session.
// It is safe for concurrent use; calls do not share state besides the
// session store and never retry.
type FetchClient struct {
	client    *utils.HTTPClient
	baseURL   string
	loginView string
	session   Session
	logger    *logger.Logger

	mu        sync.RWMutex
	notifier  Notifier
	navigator Navigator
}

// NewFetchClient builds a client for the base endpoint in adapterCfg. Until
// SetNotifier is called, notifications go to stderr.
func NewFetchClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, session Session, logger *logger.Logger) (*FetchClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &FetchClient{
		client:    utils.NewHTTPClient(adapterCfg.RequestTimeout),
		baseURL:   baseURL,
		loginView: appCfg.LoginView,
		session:   session,
		logger:    logger,
		notifier:  NewAlertNotifier(os.Stderr),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetNotifier replaces the notification surface. nil restores the stderr
// fallback.
func (c *FetchClient) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n == nil {
		n = NewAlertNotifier(os.Stderr)
	}
	c.notifier = n
}

// SetNavigator attaches the view router used on session expiry.
func (c *FetchClient) SetNavigator(n Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigator = n
}

// ResolveURL returns path unchanged when it is an absolute http(s) URL and
// the base endpoint joined with path otherwise.
func (c *FetchClient) ResolveURL(path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func isAbsoluteURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Do performs req. Transport failures are returned wrapped; every non-2xx
// status yields an [*HTTPError].
func (c *FetchClient) Do(ctx context.Context, req Request) (Result, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	target := c.ResolveURL(req.Path)

	body, hasBody, err := encodeBody(req.Body)
	if err != nil {
		return Result{}, fmt.Errorf("encode request body: %w", err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
	}
	log := c.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", target).
		Logger()

	r := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	for key, values := range c.buildHeaders(ctx, req, hasBody, requestID) {
		r.SetHeader(key, values[0])
	}
	if hasBody {
		r.SetBody(body)
	}

	start := time.Now()
	resp, err := r.Execute(method, target)
	if err != nil {
		log.Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return Result{}, fmt.Errorf("%s %s: %w", method, target, err)
	}

	data, readErr := readBody(resp.RawBody())
	status := resp.StatusCode()
	log.Debug().
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	if readErr != nil {
		log.Warn().Err(readErr).Msg("failed to read response body")
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		httpErr := &HTTPError{
			StatusCode: status,
			Status:     reasonPhrase(resp.Status(), status),
			Body:       strings.TrimSpace(string(data)),
		}
		if isAuthFailure(status) && req.RequiresAuth && req.RedirectOnAuthFailure {
			c.expireSession(ctx)
			httpErr.SessionExpired = true
		}
		return Result{StatusCode: status}, httpErr
	}

	if status == http.StatusNoContent {
		return Result{Kind: ResultEmpty, StatusCode: status}, nil
	}

	if isJSONContentType(resp.Header().Get(HeaderContentType)) {
		if readErr != nil || !json.Valid(data) {
			return Result{StatusCode: status}, fmt.Errorf("%s %s: %w", method, target, ErrInvalidJSON)
		}
		return Result{Kind: ResultJSON, StatusCode: status, Body: data}, nil
	}

	if readErr != nil {
		return Result{Kind: ResultEmpty, StatusCode: status}, nil
	}
	return Result{Kind: ResultText, StatusCode: status, Body: data}, nil
}

func (c *FetchClient) buildHeaders(ctx context.Context, req Request, hasBody bool, requestID string) http.Header {
	headers := make(http.Header, len(req.Headers)+3)
	headers.Set(HeaderRequestID, requestID)
	if hasBody {
		headers.Set(HeaderContentType, MIMEApplicationJSON)
	}
	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	if req.RequiresAuth {
		if token := c.session.Token(ctx); token != "" {
			headers.Set(HeaderAuthorization, "Bearer "+token)
		}
	}

	return headers
}

// expireSession clears the stored session and, unless the user is already
// on the login view, tells them and navigates there.
func (c *FetchClient) expireSession(ctx context.Context) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Err(err).Str("func", "*FetchClient.expireSession").Msg("failed to clear session")
	}

	c.mu.RLock()
	notifier, navigator := c.notifier, c.navigator
	c.mu.RUnlock()

	if navigator != nil && navigator.Current() == c.loginView {
		return
	}

	n := models.SessionExpiredNotification
	notifier.Notify(n.Message, n.Severity, n.Duration)
	if navigator != nil {
		navigator.Navigate(c.loginView)
	}
}

// encodeBody reports whether body is present and converts structured values
// to JSON.
func encodeBody(body any) (any, bool, error) {
	switch b := body.(type) {
	case nil:
		return nil, false, nil
	case string:
		return b, b != "", nil
	case []byte:
		return b, len(b) > 0, nil
	case json.RawMessage:
		return []byte(b), len(b) > 0, nil
	case io.Reader:
		return b, true, nil
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return nil, false, nil
		}
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(body), true, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, false, err
	}
	return encoded, true, nil
}

func readBody(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	return io.ReadAll(body)
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), MIMEApplicationJSON)
}

// reasonPhrase extracts "Not Found" from "404 Not Found", falling back to
// the standard text for code.
func reasonPhrase(status string, code int) string {
	if phrase := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code))); phrase != "" {
		return phrase
	}
	return http.StatusText(code)
}
