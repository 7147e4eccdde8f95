package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Rate spots and manage your reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ratingsListCmd lists the reviews of a spot
var ratingsListCmd = &cobra.Command{
	Use:   "list <spot-id>",
	Short: "List the reviews of a spot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.SpotDetails, func(ctx context.Context) error {
			ratings, err := a.Client.SpotRatings(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderRatingsTable(ratings))
			return nil
		})
	},
}

// ratingsRateCmd creates or updates the caller's review
var ratingsRateCmd = &cobra.Command{
	Use:   "rate <spot-id>",
	Short: "Rate a spot",
	Long: `Rate a spot from 1 to 5 stars with an optional comment. Rating a spot
you already reviewed updates your review.

Examples:
  kampeer ratings rate spot-42 --stars 5 --comment "Beautiful river view"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			stars, _ := cmd.Flags().GetInt("stars")
			comment, _ := cmd.Flags().GetString("comment")

			if err := tui.RatingForm(&stars, &comment); err != nil {
				return err
			}
			if stars < 1 || stars > 5 {
				return fmt.Errorf("--stars must be between 1 and 5")
			}

			rating, err := a.Client.RateSpot(ctx, api.RateSpotRequest{
				SpotID:  args[0],
				Rating:  stars,
				Comment: comment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Thanks! Your %d-star review is saved (%s).\n", rating.Rating, rating.ID)
			return nil
		})
	},
}

// ratingsDeleteCmd removes one of the caller's reviews
var ratingsDeleteCmd = &cobra.Command{
	Use:   "delete <rating-id>",
	Short: "Delete one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			if err := a.Client.DeleteRating(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Review deleted.")
			return nil
		})
	},
}

// ratingsMineCmd lists the caller's reviews
var ratingsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			ratings, err := a.Client.MyRatings(ctx)
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderRatingsTable(ratings))
			return nil
		})
	},
}

func init() {
	ratingsCmd.AddCommand(ratingsListCmd)
	ratingsCmd.AddCommand(ratingsRateCmd)
	ratingsCmd.AddCommand(ratingsDeleteCmd)
	ratingsCmd.AddCommand(ratingsMineCmd)

	ratingsRateCmd.Flags().Int("stars", 0, "Rating from 1 to 5")
	ratingsRateCmd.Flags().String("comment", "", "Review comment")

	rootCmd.AddCommand(ratingsCmd)
}
