package models

import "time"

// Severity classifies a transient notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a message shown to the user for a limited time.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

// SessionExpiredNotification is shown when the server rejects the session or
// the stored token runs out.
var SessionExpiredNotification = Notification{
	Message:  "Your session has expired. Please log in again.",
	Severity: SeverityWarning,
	Duration: 2 * time.Second,
}
