package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long: `Manage authentication for the Kampeer marketplace.

Credentials are stored under the state directory (default ~/.kampeer) and
attached to every request until you log out.

Examples:
  kampeer auth login --email user@example.com
  kampeer auth register
  kampeer auth status
  kampeer auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Long: `Log in to the marketplace with your email and password.

Missing flags are prompted for interactively; the password prompt never
echoes. On success the token and user record are stored locally.

Examples:
  kampeer auth login
  kampeer auth login --email user@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Login, func(ctx context.Context) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if err := tui.LoginForm(&email, &password); err != nil {
				return err
			}

			result := a.Session.Login(ctx, email, password)
			if !result.OK {
				fmt.Println(tui.DefaultStyles().Error.Render(result.Message))
				return nil
			}

			snap := a.Session.Snapshot()
			fmt.Printf("Logged in as %s (%s).\n", snap.User.Name, snap.User.Role)
			return nil
		})
	},
}

// authRegisterCmd creates a new account
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new marketplace account and log in.

The role defaults to USER; pass --role OWNER to register as a spot owner.

Examples:
  kampeer auth register
  kampeer auth register --name Pieter --email pieter@example.com --role OWNER`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Register, func(ctx context.Context) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			roleFlag, _ := cmd.Flags().GetString("role")
			role := api.Role(roleFlag)

			if err := tui.RegisterForm(&name, &email, &password, &role); err != nil {
				return err
			}

			result := a.Session.Register(ctx, api.RegisterData{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     role,
			})
			if !result.OK {
				fmt.Println(tui.DefaultStyles().Error.Render(result.Message))
				return nil
			}

			snap := a.Session.Snapshot()
			fmt.Printf("Welcome, %s! You are now logged in.\n", snap.User.Name)
			return nil
		})
	},
}

// authLogoutCmd clears the session
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		snap := a.Session.Snapshot()
		if !snap.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if snap.User != nil {
			fmt.Printf("Logging out: %s\n", snap.User.Email)
		}
		a.Session.Logout()

		fmt.Println("Logged out.")
		return nil
	},
}

// authStatusCmd shows who is logged in
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		snap := a.Session.Snapshot()
		if !snap.IsAuthenticated() {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'kampeer auth login' to authenticate.")
			return nil
		}

		fmt.Println("Logged in")
		if snap.User != nil {
			fmt.Printf("Name:  %s\n", snap.User.Name)
			fmt.Printf("Email: %s\n", snap.User.Email)
			fmt.Printf("Role:  %s\n", snap.User.Role)
		}
		if expiry := tokenExpiry(snap.Token); !expiry.IsZero() {
			fmt.Printf("Token expires: %s\n", expiry.Local().Format(time.RFC1123))
		}
		return nil
	},
}

// authCallbackCmd finishes the external-identity login flow
var authCallbackCmd = &cobra.Command{
	Use:   "callback",
	Short: "Complete an external-identity login",
	Long: `Complete a login started with 'kampeer auth google'.

The provider redirect carries a token and a user payload; paste them here to
install the session.

Examples:
  kampeer auth callback --token eyJ... --user-json '{"id":"1","name":"Pieter",...}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OAuthCallback, func(ctx context.Context) error {
			token, _ := cmd.Flags().GetString("token")
			userJSON, _ := cmd.Flags().GetString("user-json")

			if token == "" {
				return fmt.Errorf("--token is required")
			}

			var user *api.User
			if userJSON != "" {
				user = &api.User{}
				if err := json.Unmarshal([]byte(userJSON), user); err != nil {
					return fmt.Errorf("invalid --user-json: %w", err)
				}
			}

			a.Session.SetAuthData(token, user)
			if user == nil {
				// No user payload in the redirect; pull the profile with the
				// fresh token.
				a.Session.FetchProfile(ctx)
			}

			snap := a.Session.Snapshot()
			if !snap.IsAuthenticated() {
				fmt.Println("Login failed: the provider token was rejected.")
				return nil
			}
			if snap.User != nil {
				fmt.Printf("Logged in as %s.\n", snap.User.Name)
			}
			return nil
		})
	},
}

// authGoogleCmd starts the external-identity login flow
var authGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Log in with Google",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Login, func(ctx context.Context) error {
			fmt.Println("Open this URL in your browser to log in with Google:")
			fmt.Println()
			fmt.Printf("  %s\n", a.Client.GoogleAuthURL())
			fmt.Println()
			fmt.Println("Then finish with 'kampeer auth callback --token <token>'.")
			return nil
		})
	},
}

// tokenExpiry reads the expiry claim from the bearer token without verifying
// the signature; the backend remains the authority on validity.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authCallbackCmd)
	authCmd.AddCommand(authGoogleCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("name", "", "Display name")
	authRegisterCmd.Flags().String("email", "", "Email address")
	authRegisterCmd.Flags().String("password", "", "Password")
	authRegisterCmd.Flags().String("role", "", "Account role (USER or OWNER)")

	authCallbackCmd.Flags().String("token", "", "Token from the provider redirect")
	authCallbackCmd.Flags().String("user-json", "", "User payload from the provider redirect")

	rootCmd.AddCommand(authCmd)
}
