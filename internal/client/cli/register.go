package cli

import (
	"context"

	"github.com/fatih/color"
)

// Register creates an account under --name. The auth service derives the
// secret from the password and wipes both before returning; only the
// public pair travels to the server.
func (a *App) Register(ctx context.Context, args []string) error {
	name, password, err := parseCredentials("register", args)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, name, password); err != nil {
		return err
	}

	color.Green("[+] user %q registered", name)
	return nil
}
