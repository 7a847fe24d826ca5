// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings.
//
// Msg* constants prefixed by the API are written by the expense API into
// response bodies; the client maps them back to typed errors. The remaining
// constants are the wording of notifications and validation failures shown
// in the terminal UI.
package app

// API response bodies.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the email/password pair does
	// not match an account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailAlreadyExists is returned by registration for a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidDateRange is returned when start or end of a date query do
	// not parse.
	MsgInvalidDateRange = "invalid date range"

	MsgUserRegistered = "User registered successfully"
)

// Client notifications.
const (
	MsgLoginSuccess        = "Login successful!"
	MsgSignupSuccess       = "Signup successful! You're now logged in."
	MsgLoggedOut           = "You have been logged out."
	MsgExpenseAdded        = "Expense added successfully!"
	MsgDashboardLoadFailed = "Failed to load dashboard data"
	MsgExpensesLoadFailed  = "Failed to load expenses"
	MsgReportCopied        = "Report copied to clipboard"
	MsgLoginRequired       = "Please log in to continue."
)

// Client validation failures.
const (
	MsgFillEmailPassword     = "Please enter email and password."
	MsgPasswordsDoNotMatch   = "Passwords do not match."
	MsgFillAmountCategory    = "Please fill in amount and category."
	MsgAmountMustBePositive  = "Amount must be a positive number."
	MsgInvalidDate           = "Please use the YYYY-MM-DD date format."
	MsgFutureDateNotAllowed  = "You cannot select a future date."
	MsgInvalidEmailForSignup = "Please enter a valid email address."
)
