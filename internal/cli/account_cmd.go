package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/hive/internal/identity"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return fmt.Errorf("serve is not configured")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx)
		},
	}
}

func newSignupCmd(app *App) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Identity == nil {
				return fmt.Errorf("accounts are disabled: set HIVE_SESSION_SECRET")
			}
			if password == "" {
				password = os.Getenv("HIVE_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("password is required: pass --password or set HIVE_PASSWORD")
			}
			sess, err := app.Identity.SignUp(cmd.Context(), identity.SignUpInput{
				Email:    email,
				Password: password,
				Name:     name,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the hive, %s! Signed up as %s\n", displayName(sess), sess.User.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Use --user %s or export HIVE_USER=%s\n", sess.User.Email, sess.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account e-mail")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (or HIVE_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func displayName(s *identity.Session) string {
	if s.User.Name != "" {
		return s.User.Name
	}
	return s.User.Email
}

// withUser runs fn for the selected account.
func withUser(app *App, fn func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		u, err := app.currentUser(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, u.ID, args)
	}
}
