package auth

import (
	"testing"
	"time"

	"github.com/benx421/catalog/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "catalog", time.Hour)
	user := testUser()

	token, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestTokenManager_Verify(t *testing.T) {
	manager := NewTokenManager("test-secret", "catalog", time.Hour)
	user := testUser()

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("different-secret", "catalog", time.Hour)
		token, err := other.Generate(user)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("test-secret", "someone-else", time.Hour)
		token, err := other.Generate(user)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenManager("test-secret", "catalog", -time.Minute)
		token, err := expired.Generate(user)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := manager.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := manager.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_TTL(t *testing.T) {
	manager := NewTokenManager("test-secret", "catalog", 45*time.Minute)
	assert.Equal(t, 45*time.Minute, manager.TTL())
}
