package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}

	return userName, string(password), nil
}

// Signup creates an account and keeps the session the server opens for it.
func (a *App) Signup(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.client.Signup(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err)
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "User registered successfully")
	return nil
}

// Login authenticates and replaces the current session, if any.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.client.Login(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout revokes the session on the server. A session the server no longer
// knows is treated as already logged out.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	err := a.client.Logout(ctx)
	if err != nil && !errors.Is(err, common.ErrNoSession) {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}

	a.userName = ""
	fmt.Fprintln(a.out, "Logout successful")
	return nil
}

// WhoAmI prints the session the server associates with this client.
func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	s, err := a.client.WhoAmI(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userName = ""
			fmt.Fprintln(a.out, "Not authenticated")
			return err
		}
		fmt.Fprintf(a.out, "Request failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "user id: %s\nsession opened: %s\n", s.UserID, s.CreatedAt.Local().Format(time.RFC1123))
	return nil
}
