package models

// User is the registration payload accepted by POST /users/register.
// Password is sent as typed by the user; hashing is the server's concern.
type User struct {
	// UserName is the display name. When empty the client derives it from
	// the local part of Email before sending.
	UserName string `json:"userName"`

	// Email is the unique account identifier used for login.
	Email string `json:"email"`

	// Password is the plaintext account password.
	Password string `json:"password"`
}

// Credentials is the body of POST /users/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is cached next to the session token purely for display.
// The server remains the source of truth for identity.
type UserSummary struct {
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// SignupForm is what the user types on the signup view.
type SignupForm struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
}
