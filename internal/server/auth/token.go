package auth

import (
	"fmt"

	"github.com/google/uuid"
)

// NewSessionToken returns a random UUID v4 string. uuid.NewRandom reads
// from crypto/rand, so tokens are neither sequential nor guessable.
func NewSessionToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return id.String(), nil
}

// NewUserID returns a random identifier for a new account.
func NewUserID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate user id: %w", err)
	}
	return id.String(), nil
}
