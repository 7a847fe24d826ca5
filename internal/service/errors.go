package service

import (
	"errors"

	"github.com/MKhiriev/go-trackspense/internal/app"
)

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailAlreadyUsed    = errors.New("email is already registered")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoTokenIssued       = errors.New("server did not issue a session token")
)

// Validation errors carry the text shown to the user.
var (
	ErrValidationEmailPassword  = errors.New(app.MsgFillEmailPassword)
	ErrValidationEmail          = errors.New(app.MsgInvalidEmailForSignup)
	ErrValidationPasswordsMatch = errors.New(app.MsgPasswordsDoNotMatch)
	ErrValidationAmountCategory = errors.New(app.MsgFillAmountCategory)
	ErrValidationAmount         = errors.New(app.MsgAmountMustBePositive)
	ErrValidationDate           = errors.New(app.MsgInvalidDate)
	ErrValidationFutureDate     = errors.New(app.MsgFutureDateNotAllowed)
)

// IsValidationError reports whether err is one of the validation errors,
// which are safe to show verbatim.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrValidationEmailPassword,
		ErrValidationEmail,
		ErrValidationPasswordsMatch,
		ErrValidationAmountCategory,
		ErrValidationAmount,
		ErrValidationDate,
		ErrValidationFutureDate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
