package api

import (
	"context"
	"net/url"
)

// SpotRatings fetches all ratings for a spot.
func (c *Client) SpotRatings(ctx context.Context, spotID string) ([]Rating, error) {
	var ratings []Rating
	if err := c.doJSON(ctx, "GET", "/ratings/spot/"+url.PathEscape(spotID), nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// RateSpot creates or updates the caller's rating for a spot.
func (c *Client) RateSpot(ctx context.Context, req RateSpotRequest) (*Rating, error) {
	var rating Rating
	if err := c.doJSON(ctx, "POST", "/ratings", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// DeleteRating removes a rating.
func (c *Client) DeleteRating(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/ratings/"+url.PathEscape(id), nil, nil)
}

// MyRatings fetches the authenticated user's ratings.
func (c *Client) MyRatings(ctx context.Context) ([]Rating, error) {
	var ratings []Rating
	if err := c.doJSON(ctx, "GET", "/ratings/my-ratings", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
