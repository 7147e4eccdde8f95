package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/tui"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// bookingsListCmd lists the caller's bookings
var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			bookings, err := a.Client.MyBookings(ctx)
			if err != nil {
				return err
			}
			fmt.Println(tui.RenderBookingsTable(bookings))
			return nil
		})
	},
}

// bookingsCreateCmd books a date range on a spot
var bookingsCreateCmd = &cobra.Command{
	Use:   "create <spot-id>",
	Short: "Book a spot for a date range",
	Long: `Book a camping spot for a date range.

Missing dates are prompted for interactively.

Examples:
  kampeer bookings create spot-42 --from 2026-07-01 --to 2026-07-05`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			dateFrom, _ := cmd.Flags().GetString("from")
			dateTo, _ := cmd.Flags().GetString("to")

			if err := tui.BookingForm(&dateFrom, &dateTo); err != nil {
				return err
			}

			booking, err := a.Client.CreateBooking(ctx, api.CreateBookingRequest{
				SpotID:   args[0],
				DateFrom: dateFrom,
				DateTo:   dateTo,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Booked %s from %s to %s (booking %s).\n",
				args[0], booking.DateFrom, booking.DateTo, booking.ID)
			return nil
		})
	},
}

// bookingsShowCmd shows one booking
var bookingsShowCmd = &cobra.Command{
	Use:   "show <booking-id>",
	Short: "Show a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			booking, err := a.Client.GetBooking(ctx, args[0])
			if err != nil {
				return err
			}

			styles := tui.DefaultStyles()
			title := booking.SpotID
			if booking.Spot != nil {
				title = booking.Spot.Title
			}
			fmt.Println(styles.Title.Render(title))
			fmt.Printf("From: %s\n", booking.DateFrom)
			fmt.Printf("To:   %s\n", booking.DateTo)
			if booking.Spot != nil {
				fmt.Println(styles.Muted.Render(booking.Spot.Location))
			}
			return nil
		})
	},
}

// bookingsCancelCmd cancels a booking
var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		return a.runRoute(cmd.Context(), guard.Profile, func(ctx context.Context) error {
			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				confirmed, err := tui.Confirm("Cancel this booking?", false)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Kept the booking.")
					return nil
				}
			}

			if err := a.Client.CancelBooking(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Booking cancelled.")
			return nil
		})
	},
}

func init() {
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsCreateCmd)
	bookingsCmd.AddCommand(bookingsShowCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)

	bookingsCreateCmd.Flags().String("from", "", "Check-in date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().String("to", "", "Check-out date (YYYY-MM-DD)")
	bookingsCancelCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(bookingsCmd)
}
