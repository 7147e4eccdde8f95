package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

// profileCmd refreshes and shows the logged-in user's profile
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Long: `Show your profile.

The profile is refreshed from the backend, so a stale or revoked session is
detected here and cleared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			a.Session.FetchProfile(ctx)

			snap := a.Session.Snapshot()
			if !snap.IsAuthenticated() {
				// FetchProfile treats every failure as an auth failure and
				// logs out.
				fmt.Println("Your session is no longer valid. Use 'kampeer auth login'.")
				return nil
			}

			styles := tui.DefaultStyles()
			fmt.Println(styles.Title.Render(snap.User.Name))
			fmt.Printf("Email: %s\n", snap.User.Email)
			fmt.Printf("Role:  %s\n", snap.User.Role)
			if snap.User.CreatedAt != "" {
				fmt.Println(styles.Muted.Render("Member since " + snap.User.CreatedAt))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
