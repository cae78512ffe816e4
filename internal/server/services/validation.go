package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
)

// Credentials is the username/password pair submitted by signup and login.
type Credentials struct {
	Username string
	Password string
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every rule that failed for a request.
// errors.Is(err, common.ErrValidation) matches it.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

type rule struct {
	field   string
	valid   func(Credentials) bool
	message string
}

var signupRules = []rule{
	{"username", func(c Credentials) bool { return utf8.RuneCountInString(c.Username) >= 3 }, "Username must be at least 3 characters long"},
	{"password", func(c Credentials) bool { return utf8.RuneCountInString(c.Password) >= 8 }, "Password must be at least 8 characters long"},
	{"password", func(c Credentials) bool { return len(c.Password) <= auth.MaxPasswordBytes }, fmt.Sprintf("Password must be at most %d bytes long", auth.MaxPasswordBytes)},
}

var loginRules = []rule{
	{"username", func(c Credentials) bool { return c.Username != "" }, "Username is required"},
	{"password", func(c Credentials) bool { return c.Password != "" }, "Password is required"},
}

// validate runs every rule and returns a *ValidationError listing the
// failures in rule order, or nil.
func validate(c Credentials, rules []rule) error {
	var failed []FieldError
	for _, r := range rules {
		if !r.valid(c) {
			failed = append(failed, FieldError{Field: r.field, Message: r.message})
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &ValidationError{Errors: failed}
}
