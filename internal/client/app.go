package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// command runs one CLI command with operands already spread into credentials.
type command struct {
	usage    string
	operands int
	run      func(ctx context.Context, a *App, credentials models.Credentials) (any, error)
}

var commands = map[string]command{
	"login": {
		usage:    "login <username> <password>",
		operands: 2,
		run: func(ctx context.Context, a *App, c models.Credentials) (any, error) {
			token, err := a.adapter.Login(ctx, c)
			if err != nil {
				return nil, err
			}
			return models.TokenResponse{Token: token}, nil
		},
	},
	"register": {
		usage:    "register <username> <password> <email>",
		operands: 3,
		run: func(ctx context.Context, a *App, c models.Credentials) (any, error) {
			return created(a.adapter.Register(ctx, c))
		},
	},
	"adduser": {
		usage:    "adduser <username> <password> <email>  (requires -token)",
		operands: 3,
		run: func(ctx context.Context, a *App, c models.Credentials) (any, error) {
			return created(a.adapter.AddUser(ctx, c))
		},
	},
	"listusers": {
		usage: "listusers",
		run: func(ctx context.Context, a *App, _ models.Credentials) (any, error) {
			return a.adapter.ListUsers(ctx)
		},
	},
	"removeuser": {
		usage:    "removeuser <username> <password>",
		operands: 2,
		run: func(ctx context.Context, a *App, c models.Credentials) (any, error) {
			if err := a.adapter.RemoveUser(ctx, c); err != nil {
				return nil, err
			}
			return models.SuccessResponse{Success: "User removed"}, nil
		},
	},
	"version": {
		usage: "version",
		run: func(ctx context.Context, a *App, _ models.Credentials) (any, error) {
			version, err := a.adapter.Version(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]string{"version": version}, nil
		},
	},
}

type App struct {
	adapter adapter.AccountAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(accountAdapter adapter.AccountAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if accountAdapter == nil {
		return nil, ErrNoAdapter
	}

	return &App{adapter: accountAdapter, out: out, logger: logger}, nil
}

// Run executes args[0] with the remaining args as operands. Absent operands
// are sent as empty fields so the server reports what is missing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, Usage())
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, Usage())
	}
	if len(operands) > cmd.operands {
		return fmt.Errorf("%w for %s: usage: %s", ErrTooManyArgs, name, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Int("operands", len(operands)).Msg("running command")

	result, err := cmd.run(ctx, a, credentialsFrom(operands))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Usage lists the supported commands.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  " + commands[name].usage + "\n")
	}
	return b.String()
}

func credentialsFrom(operands []string) models.Credentials {
	var c models.Credentials
	fields := []*string{&c.Username, &c.Password, &c.Email}
	for i, op := range operands {
		if i < len(fields) {
			*fields[i] = op
		}
	}
	return c
}

func created(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return models.SuccessResponse{Success: app.MsgUserCreated}, nil
}
