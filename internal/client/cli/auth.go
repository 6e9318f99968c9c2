package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Camilo-Usuga/xxi-storage/internal/client/session"
	"github.com/Camilo-Usuga/xxi-storage/internal/shared"
	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

// promptIfEmpty returns v, or asks for it when it is empty.
func (a *App) promptIfEmpty(v, prompt string) (string, error) {
	if v != "" {
		return v, nil
	}
	return GetSimpleText(a.in, prompt, a.out)
}

func newRegisterCmd(app *App) *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email, err = app.promptIfEmpty(email, "Email"); err != nil {
				return err
			}
			if name, err = app.promptIfEmpty(name, "Display name"); err != nil {
				return err
			}

			pw, err := GetPassword(app.out, "Password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(pw)
			confirm, err := GetPassword(app.out, "Repeat password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(confirm)
			if !bytes.Equal(pw, confirm) {
				return errPasswordMismatch
			}

			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			u, err := app.api.Register(ctx, email, name, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Registered %s (%s)\n", u.GetEmail(), u.GetId())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email, err = app.promptIfEmpty(email, "Email"); err != nil {
				return err
			}
			pw, err := GetPassword(app.out, "Password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(pw)

			app.session.Email = email
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			if _, err := app.api.Login(ctx, email, pw); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Logged in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.session.LoggedIn() {
				ctx, cancel := app.requestContext(cmd.Context())
				defer cancel()
				if err := app.api.Logout(ctx); err != nil {
					fmt.Fprintf(app.errOut, "warning: server logout failed: %v\n", err)
				}
			}
			if err := session.Clear(app.cfg.SessionFile); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()
			u, err := app.api.Me(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s <%s>\n%s\n", u.Name, u.GetEmail(), u.GetId())
			return nil
		},
	}
}
