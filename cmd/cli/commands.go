package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"swifttrack-dashboard/internal/navigation"
	"swifttrack-dashboard/internal/render"
	"swifttrack-dashboard/internal/view"
	appErrors "swifttrack-dashboard/pkg/errors"

	"github.com/spf13/pflag"
)

func loginFlags(fs *pflag.FlagSet) {
	fs.StringP("username", "u", "", "username")
	fs.StringP("password", "p", "", "password")
}

func showFlags(fs *pflag.FlagSet) {
	fs.String("tab", "", "tab to show")
	fs.String("search", "", "free-text filter")
	fs.String("category", "", "status category filter")
}

func runLogin(ctx context.Context, env *environment, fs *pflag.FlagSet, out io.Writer) error {
	username, _ := fs.GetString("username")
	password, _ := fs.GetString("password")

	result, err := env.shell.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !result.OK() {
		return errors.New(result.Message)
	}

	name := result.Identity.Name
	if name == "" {
		name = result.Identity.Username
	}
	fmt.Fprintf(out, "Logged in as %s (%s)\n", name, result.Identity.Role)
	return nil
}

func runLogout(ctx context.Context, env *environment, _ *pflag.FlagSet, out io.Writer) error {
	if err := env.shell.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged out")
	return nil
}

func runWhoami(ctx context.Context, env *environment, _ *pflag.FlagSet, out io.Writer) error {
	// restore without mounting, so whoami never calls the API
	identity, err := env.store.Restore(ctx)
	if err != nil {
		return err
	}
	if identity == nil {
		fmt.Fprintln(out, "Not logged in")
		return nil
	}

	fmt.Fprintf(out, "user_id:  %s\nusername: %s\nname:     %s\nrole:     %s\n",
		identity.UserID, identity.Username, identity.Name, identity.Role)
	if !navigation.Known(identity.Role) {
		fmt.Fprintln(out, "(no dashboard for this role)")
	}
	return nil
}

func runShow(ctx context.Context, env *environment, fs *pflag.FlagSet, out io.Writer) error {
	tab, _ := fs.GetString("tab")
	search, _ := fs.GetString("search")
	category, _ := fs.GetString("category")

	if err := env.shell.Start(ctx); err != nil {
		return err
	}

	v := env.shell.View()
	if v == nil {
		if env.shell.ViewName() == navigation.ViewLogin {
			return fmt.Errorf("%w: run `swifttrack login` first", appErrors.ErrNoSession)
		}
		return fmt.Errorf("%w: %q", appErrors.ErrUnknownView, env.shell.ViewName())
	}

	if tab != "" {
		if err := v.SelectTab(ctx, tab); errors.Is(err, appErrors.ErrUnknownTab) {
			return fmt.Errorf("%w (available: %v)", err, v.Tabs())
		}
	}

	snap, err := v.Snapshot(view.Query{Search: search, Category: category})
	if err != nil {
		return err
	}
	return render.Snapshot(out, snap)
}
