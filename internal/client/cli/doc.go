// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration and the HTTP API client into a small REPL:
//   - signup / login    prompt for credentials and open a session
//   - whoami            show the session the server sees
//   - logout            revoke the session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
