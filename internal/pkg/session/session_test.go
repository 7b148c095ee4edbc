//go:build unit

package session_test

import (
	"testing"
	"time"

	"hotel-booking-client/internal/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestValidate(t *testing.T) {
	t.Run("empty token is not authenticated", func(t *testing.T) {
		err := session.Anonymous().Validate(now)
		require.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("unexpired jwt is accepted", func(t *testing.T) {
		sess := session.Session{Token: signedToken(t, now.Add(time.Hour))}
		assert.NoError(t, sess.Validate(now))
	})

	t.Run("expired jwt is rejected", func(t *testing.T) {
		sess := session.Session{Token: signedToken(t, now.Add(-time.Minute))}
		require.ErrorIs(t, sess.Validate(now), session.ErrTokenExpired)
	})

	t.Run("token expiring exactly now is rejected", func(t *testing.T) {
		sess := session.Session{Token: signedToken(t, now)}
		require.ErrorIs(t, sess.Validate(now), session.ErrTokenExpired)
	})

	t.Run("opaque non-jwt token is accepted", func(t *testing.T) {
		sess := session.Session{Token: "not-a-jwt"}
		assert.NoError(t, sess.Validate(now))
	})
}

func TestAuthenticated(t *testing.T) {
	assert.False(t, session.Anonymous().Authenticated())
	assert.True(t, session.Session{Token: "abc"}.Authenticated())
}
