package cli

import (
	"context"

	"github.com/fatih/color"
)

// Login runs one authentication round and prints the issued session.
func (a *App) Login(ctx context.Context, args []string) error {
	name, password, err := parseCredentials("login", args)
	if err != nil {
		return err
	}

	session, err := a.authService.Login(ctx, name, password)
	if err != nil {
		return err
	}

	color.Green("[+] logged in as %q", name)
	color.Cyan("[i] session id: %s", session.ID)
	color.Cyan("[i] session token: %s", session.Token)
	return nil
}
