package auth

import (
	"context"
	"testing"
	"time"

	"github.com/educlima/vasco-app/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemorySlots())
	require.True(t, svc.Login(ctx, "joao@vasco.com", "123456"))

	token, expires, err := svc.IssueToken(svc.CurrentUser())
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), expires)

	user, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
}

func TestToken_RejectedAfterLogout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemorySlots())
	require.True(t, svc.Login(ctx, "joao@vasco.com", "123456"))
	token, _, err := svc.IssueToken(svc.CurrentUser())
	require.NoError(t, err)

	svc.Logout(ctx)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_RejectedForOtherUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemorySlots())
	require.True(t, svc.Login(ctx, "joao@vasco.com", "123456"))
	token, _, err := svc.IssueToken(svc.CurrentUser())
	require.NoError(t, err)

	require.True(t, svc.Register(ctx, roberto()))

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Expired(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemorySlots())
	require.True(t, svc.Login(ctx, "joao@vasco.com", "123456"))
	token, _, err := svc.IssueToken(svc.CurrentUser())
	require.NoError(t, err)

	svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestToken_WrongSecret(t *testing.T) {
	ctx := context.Background()
	issuer := newTestService(t, storage.NewMemorySlots())
	require.True(t, issuer.Login(ctx, "joao@vasco.com", "123456"))
	token, _, err := issuer.IssueToken(issuer.CurrentUser())
	require.NoError(t, err)

	verifier := newTestService(t, storage.NewMemorySlots())
	verifier.cfg.SecretKey = "another-secret"
	require.True(t, verifier.Login(ctx, "joao@vasco.com", "123456"))

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	svc := newTestService(t, storage.NewMemorySlots())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = svc.IssueToken(nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
