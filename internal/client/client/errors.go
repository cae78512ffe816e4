package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError is one validation failure reported by the server.
type FieldError struct {
	Field   string `json:"path"`
	Message string `json:"msg"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		msgs := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			msgs = append(msgs, f.Message)
		}
		return strings.Join(msgs, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case common.ErrValidation:
		return len(e.Fields) > 0
	case common.ErrUserAlreadyExists:
		return e.Message == "User already exists"
	case common.ErrInvalidCredentials:
		return e.Message == "Invalid credentials"
	case common.ErrNoSession:
		return e.Message == "No session found"
	case common.ErrorInternal:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}
