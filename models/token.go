package models

// LoginResponse is returned by POST /users/login on success.
type LoginResponse struct {
	// Token is the opaque session token. It is attached as a bearer token to
	// every authenticated request.
	Token string `json:"token"`

	// Email echoes the authenticated account email.
	Email string `json:"email"`
}
