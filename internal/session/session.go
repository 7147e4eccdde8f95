// Package session owns the in-memory record of who is logged in.
//
// The Store is the single source of truth for the current identity and the
// only component that mutates the durable credential store. It is constructed
// explicitly and passed to the commands and the route guard; there is no
// package-level singleton.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/credstore"
	"github.com/maartenv/kampeer/internal/log"
)

// Result is what login and register hand back to their caller: a success flag
// and, on failure, a human-readable message. These operations never return a
// Go error; the view decides how to display the message.
type Result struct {
	OK      bool
	Message string
}

func ok() Result               { return Result{OK: true} }
func failed(msg string) Result { return Result{OK: false, Message: msg} }

// Store holds the current session and synchronizes it with the credential
// store. All mutation goes through its methods.
type Store struct {
	client *api.Client
	creds  *credstore.Store
	logger *log.Logger

	mu      sync.Mutex
	user    *api.User
	token   string
	loading bool
}

// Snapshot is an immutable view of the session at one point in time. The
// route guard and the views read snapshots; they never see the live fields.
type Snapshot struct {
	User    *api.User
	Token   string
	Loading bool
}

// IsAuthenticated reports whether a bearer credential is present.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != ""
}

// IsOwner reports whether the session belongs to an OWNER account.
func (s Snapshot) IsOwner() bool {
	return s.User != nil && s.User.Role == api.RoleOwner
}

// New creates a session store over the given API client and credential store.
func New(client *api.Client, creds *credstore.Store, logger *log.Logger) *Store {
	return &Store{
		client: client,
		creds:  creds,
		logger: logger,
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{User: s.user, Token: s.token, Loading: s.loading}
}

// Login authenticates with email and password. On success the user and token
// are committed to memory and both credential entries together; on any
// failure the prior state is left untouched and the backend's message (or a
// generic fallback) is returned.
//
// Concurrent logins are not serialized: each call performs its own network
// round trip and whichever response commits last wins the final state.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Login(ctx, api.LoginCredentials{Email: email, Password: password})
	if err != nil {
		s.logger.Debug("login failed", "email", email, "error", err.Error())
		return failed(failureMessage(err, "Login failed"))
	}

	s.commit(resp.Token, &resp.User)
	s.logger.Debug("login succeeded", "user_id", resp.User.ID, "role", string(resp.User.Role))
	return ok()
}

// Register creates an account and logs it in, with the same contract as
// Login. An empty role defaults to USER.
func (s *Store) Register(ctx context.Context, data api.RegisterData) Result {
	if data.Role == "" {
		data.Role = api.RoleUser
	}

	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Register(ctx, data)
	if err != nil {
		s.logger.Debug("registration failed", "email", data.Email, "error", err.Error())
		return failed(failureMessage(err, "Registration failed"))
	}

	s.commit(resp.Token, &resp.User)
	s.logger.Debug("registration succeeded", "user_id", resp.User.ID)
	return ok()
}

// Logout clears the in-memory session and erases both credential entries.
// Idempotent; calling it while logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("failed to clear stored credentials", "error", err.Error())
	}
}

// InitializeAuth rehydrates the session from the credential store without
// contacting the network. Both entries must be present; with only one the
// session stays unauthenticated (Recover handles the orphan-token case).
// Runs to completion before the guard evaluates its first navigation.
func (s *Store) InitializeAuth() {
	token, hasToken := s.creds.Token()
	user, hasUser := s.creds.User()
	if !hasToken || !hasUser {
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
}

// Recover reconciles a partially written credential store: a stored token
// with no cached user record. The token is adopted and a profile fetch
// refreshes the user; if that fails, FetchProfile's logout path clears the
// orphan entry. A store with no token, or with both entries, is left alone.
func (s *Store) Recover(ctx context.Context) {
	token, hasToken := s.creds.Token()
	if !hasToken {
		return
	}
	if _, hasUser := s.creds.User(); hasUser {
		return
	}

	s.logger.Debug("stored token has no cached user, refetching profile")
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.FetchProfile(ctx)
}

// FetchProfile refreshes the user record in memory and in the credential
// store without altering the token. Any failure is treated as an
// authentication failure and tears the whole session down.
func (s *Store) FetchProfile(ctx context.Context) {
	user, err := s.client.Profile(ctx)
	if err != nil {
		s.logger.Debug("profile fetch failed, logging out", "error", err.Error())
		s.Logout()
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if err := s.creds.SetUser(user); err != nil {
		s.logger.Warn("failed to mirror user record", "error", err.Error())
	}
}

// SetAuthData installs a token and user obtained outside the login/register
// path, such as the external-identity provider callback, with the same
// durability guarantee.
func (s *Store) SetAuthData(token string, user *api.User) {
	s.commit(token, user)
}

// HandleUnauthenticated is the top-level coordinator for backend-reported
// authentication failure. When err carries the transport's unauthenticated
// signal it performs a full logout and reports true so the caller can send
// the user to the login screen. All other errors are left to the caller.
func (s *Store) HandleUnauthenticated(err error) bool {
	if err == nil || !errors.Is(err, api.ErrUnauthenticated) {
		return false
	}

	s.logger.Debug("backend reported authentication failure, clearing session")
	s.Logout()
	return true
}

// commit atomically installs a new identity in memory and mirrors both
// entries to the credential store.
func (s *Store) commit(token string, user *api.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if err := s.creds.Set(token, user); err != nil {
		s.logger.Warn("failed to persist credentials", "error", err.Error())
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// failureMessage extracts the backend's error message for display, falling
// back to a generic message for transport-level failures.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
