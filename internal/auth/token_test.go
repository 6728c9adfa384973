package auth

import (
	"testing"
	"time"

	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer(TokenConfig{
		AccessSecret:    "access-secret",
		MagicLinkSecret: "magic-secret",
		AccessTTL:       15 * time.Minute,
		RefreshTTL:      24 * time.Hour,
		MagicLinkTTL:    10 * time.Minute,
	})
}

func TestAccessToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		issuer := newTestIssuer()
		userID := uuid.New()

		token, err := issuer.NewAccessToken(userID)
		require.NoError(t, err)

		parsed, err := issuer.ParseAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		issuer := newTestIssuer()
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, err := issuer.NewAccessToken(uuid.New())
		require.NoError(t, err)

		issuer.now = time.Now
		_, err = issuer.ParseAccessToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - magic link secret cannot sign access tokens", func(t *testing.T) {
		issuer := newTestIssuer()

		token, err := issuer.NewMagicLinkToken("ada@example.com")
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestMagicLinkToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		issuer := newTestIssuer()

		token, err := issuer.NewMagicLinkToken("ada@example.com")
		require.NoError(t, err)

		link, err := issuer.ParseMagicLinkToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", link.Destination)
		assert.NotEmpty(t, link.TokenID)
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), link.ExpiresAt, 5*time.Second)
	})

	t.Run("Success - every link gets its own id", func(t *testing.T) {
		issuer := newTestIssuer()

		first, _ := issuer.NewMagicLinkToken("ada@example.com")
		second, _ := issuer.NewMagicLinkToken("ada@example.com")

		a, err := issuer.ParseMagicLinkToken(first)
		require.NoError(t, err)
		b, err := issuer.ParseMagicLinkToken(second)
		require.NoError(t, err)
		assert.NotEqual(t, a.TokenID, b.TokenID)
	})

	t.Run("Failed - access token is not a magic link", func(t *testing.T) {
		issuer := newTestIssuer()

		token, err := issuer.NewAccessToken(uuid.New())
		require.NoError(t, err)

		_, err = issuer.ParseMagicLinkToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - garbage", func(t *testing.T) {
		_, err := newTestIssuer().ParseMagicLinkToken("not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestRefreshToken(t *testing.T) {
	raw, err := NewRefreshToken()
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	other, err := NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, other)

	assert.Equal(t, HashToken(raw), HashToken(raw))
	assert.NotEqual(t, raw, HashToken(raw))
}
