// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors without a business meaning, an expired session
// included, are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) || httpErr.SessionExpired {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if httpErr.Body == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if httpErr.Body == app.MsgInvalidEmailPassword {
			return ErrInvalidCredentials
		}

	case errors.Is(err, adapter.ErrConflict):
		if httpErr.Body == app.MsgEmailAlreadyExists {
			return ErrEmailAlreadyUsed
		}
	}

	return err
}
