package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// ListSpots fetches all spot listings.
func (c *Client) ListSpots(ctx context.Context) ([]Spot, error) {
	var spots []Spot
	if err := c.doJSON(ctx, "GET", "/spots", nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// GetSpot fetches a single spot by id.
func (c *Client) GetSpot(ctx context.Context, id string) (*Spot, error) {
	var spot Spot
	if err := c.doJSON(ctx, "GET", "/spots/"+url.PathEscape(id), nil, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// CreateSpot creates a listing. Image paths, when given, are attached as a
// multipart upload; otherwise the request is plain JSON.
func (c *Client) CreateSpot(ctx context.Context, req CreateSpotRequest, imagePaths []string) (*Spot, error) {
	var spot Spot
	if len(imagePaths) == 0 {
		if err := c.doJSON(ctx, "POST", "/spots", req, &spot); err != nil {
			return nil, err
		}
		return &spot, nil
	}

	if err := c.doMultipart(ctx, "POST", "/spots", spotForm(req, imagePaths), &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// UpdateSpot updates a listing, with the same upload behavior as CreateSpot.
func (c *Client) UpdateSpot(ctx context.Context, id string, req CreateSpotRequest, imagePaths []string) (*Spot, error) {
	path := "/spots/" + url.PathEscape(id)

	var spot Spot
	if len(imagePaths) == 0 {
		if err := c.doJSON(ctx, "PUT", path, req, &spot); err != nil {
			return nil, err
		}
		return &spot, nil
	}

	if err := c.doMultipart(ctx, "PUT", path, spotForm(req, imagePaths), &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// DeleteSpot removes a listing.
func (c *Client) DeleteSpot(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/spots/"+url.PathEscape(id), nil, nil)
}

// spotForm writes the listing fields and image files into a multipart form.
func spotForm(req CreateSpotRequest, imagePaths []string) func(w *multipart.Writer) error {
	return func(w *multipart.Writer) error {
		fields := map[string]string{
			"title":       req.Title,
			"description": req.Description,
			"location":    req.Location,
			"price":       strconv.FormatFloat(req.Price, 'f', -1, 64),
		}
		if req.Latitude != nil {
			fields["latitude"] = strconv.FormatFloat(*req.Latitude, 'f', -1, 64)
		}
		if req.Longitude != nil {
			fields["longitude"] = strconv.FormatFloat(*req.Longitude, 'f', -1, 64)
		}
		for name, value := range fields {
			if err := w.WriteField(name, value); err != nil {
				return err
			}
		}

		for _, path := range imagePaths {
			if err := writeImagePart(w, path); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeImagePart(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("images", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return nil
}
