package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userauth/internal/client/client"
	"github.com/dmitrijs2005/userauth/internal/client/config"
)

var ErrUsage = errors.New("usage error")

type App struct {
	config  *config.Config
	client  client.Client
	session session
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp connects to the configured server. The connection is lazy; nothing
// is sent until a command runs.
func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		client:  cl,
		session: session{path: c.SessionFile},
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Close() error {
	return a.client.Close()
}

// Run executes one subcommand. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printHelp()
		return ErrUsage
	}

	if err := a.loadToken(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout()
	case "users":
		return a.ListUsers(ctx, rest)
	case "user":
		return a.ShowUser(ctx, rest)
	case "ping":
		return a.Ping(ctx)
	case "help":
		a.printHelp()
		return nil
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		a.printHelp()
		return ErrUsage
	}
}

func (a *App) loadToken() error {
	token := a.config.AccessToken
	if token == "" {
		t, err := a.session.Load()
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}
		token = t
	}
	if token != "" {
		a.client.SetAccessToken(token)
	}
	return nil
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Usage: client [-a host:port] [-w seconds] [-c config.json] <command> [args]")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  register            create an account")
	fmt.Fprintln(a.out, "  login               sign in and remember the access token")
	fmt.Fprintln(a.out, "  logout              forget the access token")
	fmt.Fprintln(a.out, "  users [page] [size] list users")
	fmt.Fprintln(a.out, "  user <id>           show one user")
	fmt.Fprintln(a.out, "  ping                check the server")
}
