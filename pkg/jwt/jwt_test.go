package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steakhouse/storefront/pkg/jwt"
)

func TestManager(t *testing.T) {
	m := jwt.NewManager("test-signing-key", "storefront", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		id := uuid.New()
		token, err := m.GenerateSessionToken(id)
		require.NoError(t, err)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		got, err := claims.SessionID()
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, jwt.TokenTypeSession, claims.TokenType)
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := jwt.NewManager("other-key", "storefront", time.Hour).GenerateSessionToken(uuid.New())
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := jwt.NewManager("test-signing-key", "elsewhere", time.Hour).GenerateSessionToken(uuid.New())
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewManager("test-signing-key", "storefront", -time.Minute).GenerateSessionToken(uuid.New())
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not-a-token")
		assert.Error(t, err)
	})
}
