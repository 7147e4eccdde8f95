package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// RequestHook transforms an outgoing request before it is sent.
type RequestHook func(req *http.Request) error

// ResponseHook inspects a response before it is handed to the caller.
// Returning an error aborts normal response handling and surfaces that error.
type ResponseHook func(resp *http.Response) error

// Client is the marketplace API client. All backend calls go through a single
// request/response pipeline: every request hook runs in order before the call,
// every response hook runs in order after it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	requestHooks  []RequestHook
	responseHooks []ResponseHook
}

// NewClient creates a client for the backend at baseURL with no hooks
// installed. Callers compose the pipeline with Use and UseResponse.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Use appends request hooks to the pipeline.
func (c *Client) Use(hooks ...RequestHook) *Client {
	c.requestHooks = append(c.requestHooks, hooks...)
	return c
}

// UseResponse appends response hooks to the pipeline.
func (c *Client) UseResponse(hooks ...ResponseHook) *Client {
	c.responseHooks = append(c.responseHooks, hooks...)
	return c
}

// doJSON performs a request with an optional JSON body and decodes the
// response into target.
func (c *Client) doJSON(ctx context.Context, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, target)
}

// doMultipart performs a request with a multipart form body. The Content-Type
// header comes from the multipart writer; the JSON content type must not be
// set or the backend rejects the upload.
func (c *Client) doMultipart(ctx context.Context, method, path string, form func(w *multipart.Writer) error, target interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := form(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, target)
}

// do runs the pipeline around a single HTTP exchange.
func (c *Client) do(req *http.Request, target interface{}) error {
	for _, hook := range c.requestHooks {
		if err := hook(req); err != nil {
			return err
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}

	for _, hook := range c.responseHooks {
		if err := hook(resp); err != nil {
			resp.Body.Close()
			return err
		}
	}

	return parseResponse(resp, target)
}

// parseResponse decodes the response body into target, converting non-2xx
// responses into a typed *Error built from the backend's error envelope.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &Error{StatusCode: resp.StatusCode}

		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil {
			if envelope.Error != "" {
				apiErr.Message = envelope.Error
			} else if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(body)
		}

		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
