package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	kerrors "github.com/maartenv/kampeer/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"not logged in", kerrors.NewNotLoggedInError(), AuthError},
		{"session expired", kerrors.NewSessionExpiredError(), AuthError},
		{"owner only", kerrors.NewOwnerOnlyError(), AuthError},
		{"api unreachable", kerrors.NewAPIUnreachableError("http://localhost:3001/api", errors.New("refused")), NetworkError},
		{"invalid config", kerrors.New(kerrors.ErrCodeConfigInvalid, "bad yaml"), UsageError},
		{"other coded error", kerrors.New(kerrors.ErrCodeFileReadFailed, "read failed"), GeneralError},
		{"wrapped coded error", fmt.Errorf("login: %w", kerrors.NewSessionExpiredError()), AuthError},
		{"plain unauthenticated", errors.New("GET /auth/profile: unauthenticated"), AuthError},
		{"connection refused", errors.New("dial tcp: connection refused"), NetworkError},
		{"timeout", errors.New("context deadline exceeded (Client.Timeout)"), NetworkError},
		{"plain error", errors.New("something broke"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}
