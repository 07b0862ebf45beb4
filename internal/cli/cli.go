// Package cli implements the tokenkeeper admin commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/tokenkeeper/internal/iocli"
	"github.com/iudanet/tokenkeeper/internal/models"
)

// ErrUnknownCommand is returned for an unsupported command name
var ErrUnknownCommand = errors.New("unknown command")

// UserService is the part of users.Store the commands need
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (bool, error)
}

type Cli struct {
	io    iocli.IO
	users UserService
}

func New(io iocli.IO, users UserService) *Cli {
	return &Cli{
		io:    io,
		users: users,
	}
}

// Run dispatches args[0] to a command
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "verify":
		return c.runVerify(ctx, args[1:])
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

// PrintUsage prints the command list
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: tokenkeeper [flags] <command> [args]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register        create a new user")
	c.io.Println("  login           check a password and issue a token")
	c.io.Println("  verify [token]  check that a token was issued")
	c.io.Println("  help            show this message")
	c.io.Println()
	c.io.Println("Flags:")
	c.io.Println("  -c, -config     JSON config file")
	c.io.Println("  -driver         storage driver (bolt, sqlite)")
	c.io.Println("  -db             database path")
	c.io.Println("  -cost           bcrypt cost")
	c.io.Println("  -log-level      debug, info, warn, error")
	c.io.Println("  -log-format     text, json")
	c.io.Println("  -version        show version information")
}
