// Package common contains shared constants and sentinel errors used across
// gophauth components.
package common

// SessionCookieName is the cookie that carries the opaque session token
// between the client and the server.
const SessionCookieName = "sessionId"

// AuthRoutePrefix is the path prefix under which the authentication routes
// are mounted.
const AuthRoutePrefix = "/api/auth"
