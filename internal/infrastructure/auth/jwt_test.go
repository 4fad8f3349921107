package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/auth"
)

func TestJWTService(t *testing.T) {
	t.Run("token subject round-trips to the user id", func(t *testing.T) {
		svc := auth.NewJWTService("secret", time.Hour)
		userID := uuid.New()

		token, expiresAt, err := svc.GenerateAccessToken(userID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

		got, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("tokens from two users never collide", func(t *testing.T) {
		svc := auth.NewJWTService("secret", time.Hour)
		alice := uuid.New()
		bob := uuid.New()

		aliceToken, _, err := svc.GenerateAccessToken(alice)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(aliceToken)
		require.NoError(t, err)
		assert.Equal(t, alice, got)
		assert.NotEqual(t, bob, got)
	})

	t.Run("expired token fails validation", func(t *testing.T) {
		svc := auth.NewJWTService("secret", -time.Minute)

		token, _, err := svc.GenerateAccessToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong secret fails validation", func(t *testing.T) {
		svc := auth.NewJWTService("secret", time.Hour)
		other := auth.NewJWTService("another-secret", time.Hour)

		token, _, err := svc.GenerateAccessToken(uuid.New())
		require.NoError(t, err)

		_, err = other.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("tampered token fails validation", func(t *testing.T) {
		svc := auth.NewJWTService("secret", time.Hour)

		token, _, err := svc.GenerateAccessToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token + "x")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
