package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Owner dashboard and listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ownerDashboardCmd shows the revenue dashboard
var ownerDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your revenue dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OwnerDashboard, func(ctx context.Context) error {
			dash, err := a.Client.OwnerDashboard(ctx)
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderDashboard(dash))
			return nil
		})
	},
}

// ownerSpotsCmd lists the owner's listings
var ownerSpotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "List your listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OwnerDashboard, func(ctx context.Context) error {
			spots, err := a.Client.OwnerSpots(ctx)
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderSpotsTable(spots))
			return nil
		})
	},
}

func init() {
	ownerCmd.AddCommand(ownerDashboardCmd)
	ownerCmd.AddCommand(ownerSpotsCmd)

	rootCmd.AddCommand(ownerCmd)
}
