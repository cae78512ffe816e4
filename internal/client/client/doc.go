// Package client talks to the gophauth HTTP API on behalf of the CLI.
//
// HTTPClient keeps the session cookie in a cookie jar, so a login made
// through it authenticates every later call until Logout.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable. Rejections from the
// server come back as *APIError, which matches the sentinels in
// internal/common through errors.Is (ErrUserAlreadyExists,
// ErrInvalidCredentials, ErrNoSession, ErrValidation) and ErrUnauthorized
// for 401 responses.
package client
