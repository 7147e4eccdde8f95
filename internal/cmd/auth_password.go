package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/guard"
)

// authForgotPasswordCmd requests a reset email
var authForgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password-reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.ForgotPassword, func(ctx context.Context) error {
			email, _ := cmd.Flags().GetString("email")
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			if err := a.Client.ForgotPassword(ctx, email); err != nil {
				return err
			}
			fmt.Printf("If %s has an account, a reset email is on its way.\n", email)
			return nil
		})
	},
}

// authResetPasswordCmd sets a new password with a reset token
var authResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using a reset token",
	Long: `Set a new password using the token from a password-reset email.

Examples:
  kampeer auth reset-password --token <token> --password <new password>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.ResetPassword, func(ctx context.Context) error {
			token, _ := cmd.Flags().GetString("token")
			password, _ := cmd.Flags().GetString("password")
			if token == "" {
				return fmt.Errorf("--token is required")
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}

			if err := a.Client.VerifyResetToken(ctx, token); err != nil {
				return fmt.Errorf("reset token rejected: %w", err)
			}
			if err := a.Client.ResetPassword(ctx, token, password); err != nil {
				return err
			}
			fmt.Println("Password updated. Log in with your new password.")
			return nil
		})
	},
}

// authChangePasswordCmd changes the current password
var authChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			current, _ := cmd.Flags().GetString("current")
			newPassword, _ := cmd.Flags().GetString("new")
			if current == "" {
				return fmt.Errorf("--current is required")
			}
			if newPassword == "" {
				return fmt.Errorf("--new is required")
			}

			if err := a.Client.ChangePassword(ctx, current, newPassword); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			return nil
		})
	},
}

func init() {
	authCmd.AddCommand(authForgotPasswordCmd)
	authCmd.AddCommand(authResetPasswordCmd)
	authCmd.AddCommand(authChangePasswordCmd)

	authForgotPasswordCmd.Flags().String("email", "", "Email address")

	authResetPasswordCmd.Flags().String("token", "", "Reset token from the email")
	authResetPasswordCmd.Flags().String("password", "", "New password")

	authChangePasswordCmd.Flags().String("current", "", "Current password")
	authChangePasswordCmd.Flags().String("new", "", "New password")
}
