package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer credential. The credential store
// satisfies this; the transport reads durable state rather than the in-memory
// session so it stays correct across restarts.
type TokenSource interface {
	Token() (string, bool)
}

// BearerToken returns a request hook that attaches the stored bearer
// credential to every outgoing request. Requests go out anonymous when no
// credential is stored.
func BearerToken(source TokenSource) RequestHook {
	return func(req *http.Request) error {
		if token, ok := source.Token(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// RequestID returns a request hook that tags every request with a fresh
// X-Request-Id for backend log correlation.
func RequestID() RequestHook {
	return func(req *http.Request) error {
		req.Header.Set("X-Request-Id", uuid.NewString())
		return nil
	}
}

// Unauthorized returns a response hook that converts a 401 response into the
// ErrUnauthenticated sentinel. The hook does not clear credentials or touch
// the session; the top-level coordinator owns the teardown.
func Unauthorized() ResponseHook {
	return func(resp *http.Response) error {
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%s %s: %w", resp.Request.Method, resp.Request.URL.Path, ErrUnauthenticated)
		}
		return nil
	}
}
