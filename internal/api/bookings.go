package api

import (
	"context"
	"net/url"
)

// MyBookings fetches the authenticated user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.doJSON(ctx, "GET", "/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a date range on a spot.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.doJSON(ctx, "POST", "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBooking fetches a single booking by id.
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if err := c.doJSON(ctx, "GET", "/bookings/"+url.PathEscape(id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/bookings/"+url.PathEscape(id), nil, nil)
}
