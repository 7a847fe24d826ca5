// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/service"
)

const msgServerUnavailable = "No network connection or the server is unavailable"

// humanizeError turns err into the line shown under a form.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if service.IsValidationError(err) {
		return err.Error()
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, service.ErrEmailAlreadyUsed):
		return "An account with this email already exists."
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Please log in first."
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
