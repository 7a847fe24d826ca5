// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" header and by the in-memory store.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmailAlreadyExists is returned by the store for a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned by the store for an unknown email.
	ErrUserNotFound = errors.New("user not found")
)
