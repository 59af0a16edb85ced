package auth

import (
	"context"
	"testing"
	"time"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUseCase() *UseCase {
	return NewUseCase(memory.NewStore().Users(), testSecret, time.Hour)
}

func TestRegisterIssuesParsableToken(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	resp, err := uc.Register(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	userID, err := uc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, userID)
}

func TestRegisterValidatesInput(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	_, err := uc.Register(ctx, "", "hunter2hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, "player@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	_, err := uc.Register(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "player@example.com", "anotherpassword")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	registered, err := uc.Register(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)

	resp, err := uc.Login(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, resp.UserID)

	_, err = uc.Login(ctx, "player@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseTokenRejectsForgeries(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	resp, err := uc.Register(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = uc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	// A token signed with another secret fails verification.
	other := NewUseCase(memory.NewStore().Users(), "another-secret-another-secret-xx", time.Hour)
	_, err = other.ParseToken(resp.Token)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
