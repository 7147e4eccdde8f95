package api

import "context"

// UserProfile fetches the authenticated user's profile from the users
// endpoint. The auth endpoint's Profile is the canonical session refresh;
// this one backs the profile page.
func (c *Client) UserProfile(ctx context.Context) (*User, error) {
	var resp ProfileResponse
	if err := c.doJSON(ctx, "GET", "/users/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// OwnerDashboard fetches booking and revenue statistics for the
// authenticated owner's listings.
func (c *Client) OwnerDashboard(ctx context.Context) (*OwnerDashboard, error) {
	var dash OwnerDashboard
	if err := c.doJSON(ctx, "GET", "/users/owner/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// OwnerSpots fetches the authenticated owner's listings.
func (c *Client) OwnerSpots(ctx context.Context) ([]Spot, error) {
	var spots []Spot
	if err := c.doJSON(ctx, "GET", "/users/owner/spots", nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}
