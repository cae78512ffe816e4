// Package models holds the records persisted by the server repositories.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never the
// plaintext password.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
