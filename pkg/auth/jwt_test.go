package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("user token carries the user role", func(t *testing.T) {
		token, err := manager.GenerateToken("507f1f77bcf86cd799439011", RoleUser)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
		assert.Equal(t, RoleUser, claims.Role)
	})

	t.Run("admin token carries the admin role", func(t *testing.T) {
		token, err := manager.GenerateToken("admin@example.com", RoleAdmin)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, claims.Role)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.GenerateToken("u1", RoleUser)
		require.NoError(t, err)

		manager := NewJWTManager("test-secret", time.Hour)
		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Minute)
		token, err := manager.GenerateToken("u1", RoleUser)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		_, err := manager.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
