package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root greets the user, checks that the server answers and runs the REPL
// on the app's input until the user leaves.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to gophauth CLI (type 'help' for commands)")

	pingCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	if err := a.client.Ping(pingCtx); err != nil {
		printlnFn("Warning:", err.Error())
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}
