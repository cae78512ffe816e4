package models

import "time"

// Session binds an opaque token to a user. Sessions have no expiry and live
// until logout.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
