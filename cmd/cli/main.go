// Command swifttrack is the terminal client of the SwiftTrack dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"swifttrack-dashboard/internal/apiclient"
	"swifttrack-dashboard/internal/app"
	"swifttrack-dashboard/internal/config"
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/infrastructure/database"
	"swifttrack-dashboard/internal/logger"
	"swifttrack-dashboard/internal/session"
	"swifttrack-dashboard/internal/usecase/auth"
	"swifttrack-dashboard/internal/usecase/dashboard"
	"swifttrack-dashboard/internal/view"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `Usage: swifttrack <command> [flags]

Commands:
  login    --username NAME --password SECRET
  logout
  whoami
  show     [--tab TAB] [--search TEXT] [--category NAME]

Global flags:
  --api-url URL            upstream API base URL (API_BASE_URL)
  --session-backend NAME   sqlite, postgres or memory (SESSION_BACKEND)
  --session-path PATH      sqlite session file (SESSION_SQLITE_PATH)
  --verbose                log to stderr
`

// errUsage marks a failure already explained to the user
var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	err := run(context.Background(), os.Args[1], os.Args[2:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type command func(ctx context.Context, env *environment, fs *pflag.FlagSet, out io.Writer) error

var commands = map[string]struct {
	flags func(fs *pflag.FlagSet)
	run   command
}{
	"login":  {flags: loginFlags, run: runLogin},
	"logout": {run: runLogout},
	"whoami": {run: runWhoami},
	"show":   {flags: showFlags, run: runShow},
}

func run(ctx context.Context, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", name, usage)
		return errUsage
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("api-url", "", "upstream API base URL")
	fs.String("session-backend", "", "session storage backend")
	fs.String("session-path", "", "sqlite session file")
	verbose := fs.Bool("verbose", false, "log to stderr")
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(os.Stderr, usage)
		}
		return errUsage
	}

	v := viper.New()
	for key, flag := range map[string]string{
		"API_BASE_URL":        "api-url",
		"SESSION_BACKEND":     "session-backend",
		"SESSION_SQLITE_PATH": "session-path",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}

	env, err := open(v, *verbose)
	if err != nil {
		return err
	}
	defer env.close()

	return cmd.run(ctx, env, fs, out)
}

// environment is what every command works against.
type environment struct {
	cfg     *config.Config
	storage database.SessionBackend
	store   *session.Store
	shell   *app.Shell
}

func open(v *viper.Viper, verbose bool) (*environment, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, err
	}

	if verbose {
		if err := logger.Init(cfg.Server.Environment); err != nil {
			return nil, err
		}
	}

	storage, err := database.OpenSessionBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	client := apiclient.New(cfg.API.BaseURL)
	store := session.NewStore(storage)
	shell := app.NewShell(store, auth.NewService(client), func(identity *record.Identity) (*view.View, error) {
		return dashboard.New(identity, client)
	})

	return &environment{cfg: cfg, storage: storage, store: store, shell: shell}, nil
}

func (e *environment) close() {
	_ = e.storage.Close()
	logger.Sync()
}
