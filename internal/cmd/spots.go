package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

var spotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "Browse and manage camping spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// spotsListCmd lists all spots
var spotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all camping spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Home, func(ctx context.Context) error {
			spots, err := a.Client.ListSpots(ctx)
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderSpotsTable(spots))
			return nil
		})
	},
}

// spotsShowCmd shows one spot with its reviews
var spotsShowCmd = &cobra.Command{
	Use:   "show <spot-id>",
	Short: "Show a spot and its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.SpotDetails, func(ctx context.Context) error {
			spot, err := a.Client.GetSpot(ctx, args[0])
			if err != nil {
				return err
			}

			styles := tui.DefaultStyles()
			fmt.Println(styles.Title.Render(spot.Title))
			fmt.Println(styles.Subtitle.Render(spot.Location))
			fmt.Println()
			fmt.Println(spot.Description)
			fmt.Println()
			fmt.Println(styles.Price.Render(fmt.Sprintf("€%.2f per night", spot.Price)))
			if spot.Owner != nil {
				fmt.Println(styles.Muted.Render("Hosted by " + spot.Owner.Name))
			}

			ratings, err := a.Client.SpotRatings(ctx, spot.ID)
			if err == nil && len(ratings) > 0 {
				fmt.Println()
				fmt.Println(styles.Subtitle.Render("Reviews"))
				for _, r := range ratings {
					line := styles.Rating.Render(strings.Repeat("★", r.Rating))
					if r.User != nil {
						line += styles.Muted.Render("  " + r.User.Name)
					}
					fmt.Println(line)
					if r.Comment != "" {
						fmt.Println("  " + r.Comment)
					}
				}
			}
			return nil
		})
	},
}

// spotsBrowseCmd opens the interactive browser
var spotsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse spots interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Home, func(ctx context.Context) error {
			program := tea.NewProgram(tui.NewBrowser(a.Client), tea.WithAltScreen())
			_, err := program.Run()
			return err
		})
	},
}

// spotsCreateCmd creates a listing
var spotsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new listing",
	Long: `Create a new camping spot listing.

Images are uploaded alongside the listing fields when --image is given.

Examples:
  kampeer spots create --title "Riverside pitch" --location "Ardennen" --price 24.50
  kampeer spots create --title "Forest clearing" --location "Veluwe" --price 18 --image front.jpg --image view.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OwnerDashboard, func(ctx context.Context) error {
			req, images, err := spotRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			spot, err := a.Client.CreateSpot(ctx, req, images)
			if err != nil {
				return err
			}
			fmt.Printf("Created spot %s (%s).\n", spot.Title, spot.ID)
			return nil
		})
	},
}

// spotsUpdateCmd updates a listing
var spotsUpdateCmd = &cobra.Command{
	Use:   "update <spot-id>",
	Short: "Update a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OwnerDashboard, func(ctx context.Context) error {
			req, images, err := spotRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			spot, err := a.Client.UpdateSpot(ctx, args[0], req, images)
			if err != nil {
				return err
			}
			fmt.Printf("Updated spot %s.\n", spot.ID)
			return nil
		})
	},
}

// spotsDeleteCmd deletes a listing
var spotsDeleteCmd = &cobra.Command{
	Use:   "delete <spot-id>",
	Short: "Delete a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.OwnerDashboard, func(ctx context.Context) error {
			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				confirmed, err := tui.Confirm("Delete this listing and its bookings?", false)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := a.Client.DeleteSpot(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Listing deleted.")
			return nil
		})
	},
}

// spotRequestFromFlags assembles the listing payload shared by create and
// update.
func spotRequestFromFlags(cmd *cobra.Command) (api.CreateSpotRequest, []string, error) {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	location, _ := cmd.Flags().GetString("location")
	price, _ := cmd.Flags().GetFloat64("price")
	images, _ := cmd.Flags().GetStringArray("image")

	if title == "" {
		return api.CreateSpotRequest{}, nil, fmt.Errorf("--title is required")
	}
	if location == "" {
		return api.CreateSpotRequest{}, nil, fmt.Errorf("--location is required")
	}
	if price <= 0 {
		return api.CreateSpotRequest{}, nil, fmt.Errorf("--price must be positive")
	}

	req := api.CreateSpotRequest{
		Title:       title,
		Description: description,
		Location:    location,
		Price:       price,
	}

	if cmd.Flags().Changed("lat") {
		lat, _ := cmd.Flags().GetFloat64("lat")
		req.Latitude = &lat
	}
	if cmd.Flags().Changed("lon") {
		lon, _ := cmd.Flags().GetFloat64("lon")
		req.Longitude = &lon
	}

	return req, images, nil
}

func addSpotFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Listing title")
	cmd.Flags().String("description", "", "Listing description")
	cmd.Flags().String("location", "", "Location name")
	cmd.Flags().Float64("price", 0, "Price per night")
	cmd.Flags().Float64("lat", 0, "Latitude")
	cmd.Flags().Float64("lon", 0, "Longitude")
	cmd.Flags().StringArray("image", nil, "Image file to upload (repeatable)")
}

func init() {
	spotsCmd.AddCommand(spotsListCmd)
	spotsCmd.AddCommand(spotsShowCmd)
	spotsCmd.AddCommand(spotsBrowseCmd)
	spotsCmd.AddCommand(spotsCreateCmd)
	spotsCmd.AddCommand(spotsUpdateCmd)
	spotsCmd.AddCommand(spotsDeleteCmd)

	addSpotFlags(spotsCreateCmd)
	addSpotFlags(spotsUpdateCmd)
	spotsDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(spotsCmd)
}
