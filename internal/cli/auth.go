package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/service"
)

func newLoginCmd(a *app.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.Session.Login(cmd.Context(), service.LoginInput{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			notify(cmd.OutOrStdout(), "Login successful!")
			if session.IsAdmin() {
				notify(cmd.OutOrStdout(), "Welcome back, %s. Admin commands are available.", session.User.Name)
			} else {
				notify(cmd.OutOrStdout(), "Welcome back, %s.", session.User.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(a *app.App) *cobra.Command {
	var input service.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Session.Register(cmd.Context(), input); err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "Account created successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number (optional)")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (min 8 characters)")
	cmd.Flags().StringVar(&input.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().BoolVar(&input.AcceptTerms, "accept-terms", false, "agree to the terms and conditions")
	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			notify(cmd.OutOrStdout(), "Logged out successfully")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			session, err := a.Session.Current(cmd.Context())
			if err != nil {
				return err
			}
			if !session.IsLoggedIn() {
				notify(out, "Not logged in")
				return nil
			}

			notify(out, "Name:  %s", session.User.Name)
			notify(out, "Email: %s", session.User.Email)
			notify(out, "Role:  %s", session.User.Role)

			// Claims are display-only; a garbled token still counts as a
			// session until the backend says otherwise.
			if claims, err := a.Session.TokenClaims(session.Token); err == nil {
				if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
					notify(out, "Token expires: %s", exp.Format(time.RFC1123))
				}
			}

			if session.User.Role == domain.RoleAdmin {
				notify(out, "Admin commands are available.")
			}
			return nil
		},
	}
}
