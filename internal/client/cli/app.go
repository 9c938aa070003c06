package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/client/client"
	"github.com/dpetrovs/zkpauth/internal/client/config"
	"github.com/dpetrovs/zkpauth/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, chaumpedersen.Default())

	return &App{config: c, authService: as}, nil
}

const usage = `usage: zkpauth-client [-a addr] <command>

commands:
  register --name <NAME> [--password <PASSWORD>]
  login    --name <NAME> [--password <PASSWORD>]`

// Run executes a single subcommand and returns its error.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.authService.Close(ctx)

	cmd, rest := nextCommand(args)
	switch cmd {
	case "register":
		return a.Register(ctx, rest)
	case "login":
		return a.Login(ctx, rest)
	case "":
		return fmt.Errorf("no command given\n%s", usage)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

// nextCommand returns the first token that is neither a flag nor a flag's
// value, plus everything after it. Global flags such as -a may precede
// the subcommand.
func nextCommand(args []string) (string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		return arg, args[i+1:]
	}
	return "", nil
}

// parseCredentials parses the --name and --password flags shared by the
// register and login subcommands. A missing --password falls back to a
// no-echo terminal prompt.
func parseCredentials(cmd string, args []string) (string, []byte, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	name := fs.String("name", "", "user name")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	if *name == "" {
		return "", nil, errors.New("--name is required")
	}

	if *password != "" {
		return *name, []byte(*password), nil
	}

	pw, err := getPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}
	return *name, pw, nil
}
