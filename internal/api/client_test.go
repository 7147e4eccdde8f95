package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() (string, bool) {
	return string(t), t != ""
}

func TestBearerToken_AttachesHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).Use(BearerToken(staticToken("tok-123")))
	_, err := client.ListSpots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestBearerToken_AnonymousWhenNoCredential(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).Use(BearerToken(staticToken("")))
	_, err := client.ListSpots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequestID_FreshPerRequest(t *testing.T) {
	var ids []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).Use(RequestID())
	for i := 0; i < 2; i++ {
		_, err := client.ListSpots(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestUnauthorized_SignalsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL).UseResponse(Unauthorized())
	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthenticated))
	assert.Contains(t, err.Error(), "/auth/profile")
}

func TestUnauthorized_OtherStatusesPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Forbidden"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL).UseResponse(Unauthorized())
	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthenticated))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestErrorFromEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusBadRequest, `{"error":"Invalid credentials"}`, "Invalid credentials"},
		{"message field", http.StatusConflict, `{"message":"Spot already booked"}`, "Spot already booked"},
		{"error wins over message", http.StatusBadRequest, `{"error":"bad","message":"other"}`, "bad"},
		{"non-JSON body", http.StatusBadGateway, `upstream down`, "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL).ListSpots(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestError_401MatchesSentinelDirectly(t *testing.T) {
	// Even without the response hook installed, a 401 envelope error matches
	// the sentinel through Error.Is.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Profile(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthenticated))
}

func TestLogin_DecodesUserAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"user":{"id":"u1","name":"Sanne","email":"sanne@example.com","role":"USER"},"token":"jwt-1"}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Login(context.Background(), LoginCredentials{
		Email:    "sanne@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", resp.Token)
	assert.Equal(t, "Sanne", resp.User.Name)
	assert.Equal(t, RoleUser, resp.User.Role)
}

func TestCreateSpot_JSONWithoutImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"s1","title":"Bosrand","price":25}`))
	}))
	defer server.Close()

	spot, err := NewClient(server.URL).CreateSpot(context.Background(), CreateSpotRequest{
		Title: "Bosrand",
		Price: 25,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "s1", spot.ID)
}

func TestCreateSpot_MultipartWithImages(t *testing.T) {
	image := filepath.Join(t.TempDir(), "tent.jpg")
	require.NoError(t, os.WriteFile(image, []byte("jpeg-bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Bosrand", r.FormValue("title"))
		assert.Equal(t, "25", r.FormValue("price"))

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 1)
		assert.Equal(t, "tent.jpg", files[0].Filename)

		w.Write([]byte(`{"id":"s1","title":"Bosrand","price":25}`))
	}))
	defer server.Close()

	spot, err := NewClient(server.URL).CreateSpot(context.Background(), CreateSpotRequest{
		Title: "Bosrand",
		Price: 25,
	}, []string{image})
	require.NoError(t, err)
	assert.Equal(t, "s1", spot.ID)
}

func TestHookOrder(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).
		Use(
			func(req *http.Request) error { order = append(order, "req-1"); return nil },
			func(req *http.Request) error { order = append(order, "req-2"); return nil },
		).
		UseResponse(func(resp *http.Response) error { order = append(order, "resp"); return nil })

	_, err := client.ListSpots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1", "req-2", "resp"}, order)
}

func TestRequestHookError_AbortsCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	hookErr := errors.New("no credential available")
	client := NewClient(server.URL).Use(func(req *http.Request) error { return hookErr })

	_, err := client.ListSpots(context.Background())
	assert.ErrorIs(t, err, hookErr)
	assert.False(t, called)
}

func TestGoogleAuthURL(t *testing.T) {
	client := NewClient("http://localhost:3001/api")
	assert.Equal(t, "http://localhost:3001/api/auth/google", client.GoogleAuthURL())
}
