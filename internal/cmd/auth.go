package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventcal-io/eventcal/internal/api"
	"github.com/eventcal-io/eventcal/internal/errors"
	"github.com/eventcal-io/eventcal/internal/storage"
	"github.com/eventcal-io/eventcal/internal/tui"
)

var (
	loginUsername string
	loginPassword string

	signupUsername string
	signupEmail    string
	signupPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the event-calendar backend",
	Long: `Log in with your username and password. Missing values are asked
for interactively. On success the access token is saved locally and
reused by later commands until you log out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		creds, err := tui.PromptForLogin(tui.Credentials{
			Username: loginUsername,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}

		token, err := current.client.Login(ctx, creds.Username, creds.Password)
		if err != nil {
			if errors.IsValidation(err) {
				return errors.NewLoginFailedError(err)
			}
			return err
		}
		if err := current.session.Login(ctx, token.AccessToken); err != nil {
			return err
		}

		user := current.session.User()
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Username, user.Email)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Create an account on the event-calendar backend. The username is
checked for availability before the account is created. Missing values
are asked for interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		details, err := tui.PromptForSignup(tui.SignupDetails{
			Username: signupUsername,
			Email:    signupEmail,
			Password: signupPassword,
		})
		if err != nil {
			return err
		}

		avail, err := current.client.CheckUsernameAvailability(ctx, details.Username)
		if err != nil {
			return err
		}
		if !avail.Available {
			msg := avail.Message
			if msg == "" {
				msg = fmt.Sprintf("username %q is already taken", details.Username)
			}
			return errors.NewValidationError(msg).
				WithSuggestion("Pick a different username and try again")
		}

		user, err := current.client.Signup(ctx, api.SignupRequest{
			Username: details.Username,
			Email:    details.Email,
			Password: details.Password,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s (%s)\n", user.Username, user.Email)
		fmt.Fprintln(cmd.OutOrStdout(), "Run 'eventcal login' to sign in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear local account state",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logout is a purely local operation: whether a session exists is
		// decided by the persisted token, never by asking the backend.
		if _, err := current.store.Get(storage.KeyAccessToken); err != nil {
			if err == storage.ErrNotFound {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			return err
		}

		current.session.Logout()

		// Liked events are local account state too; a fresh session
		// starts with none.
		liked, err := getLikes()
		if err != nil {
			current.logger.WithError(err).Warn("liked events unreadable, removing stored set")
			if err := current.store.Remove(storage.KeyLikedEvents); err != nil {
				current.logger.WithError(err).Warn("failed to clear liked events")
			}
		} else if err := liked.Clear(); err != nil {
			current.logger.WithError(err).Warn("failed to clear liked events")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		current.session.Bootstrap(cmd.Context())

		user := current.session.User()
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Logged in as: %s\n", user.Username)
		fmt.Fprintf(out, "Email:        %s\n", user.Email)
		fmt.Fprintf(out, "Backend:      %s\n", current.client.BaseURL())
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted if omitted)")

	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "desired username")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "account email address")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "account password (prompted if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}
