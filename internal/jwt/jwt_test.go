package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorturl-be/internal/entities"
)

var alice = entities.Identity{UserID: "u-1", Username: "alice", Role: entities.RoleUser}

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateToken(alice)
	require.NoError(t, err)

	identity, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, alice, *identity)
}

func TestValidateToken_Expiry(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issued

	svc := NewJWTService("secret").WithClock(func() time.Time { return now })

	token, err := svc.GenerateToken(alice)
	require.NoError(t, err)

	now = issued.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)

	now = issued.Add(TokenTTL + time.Second)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateToken(alice)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTService("other").ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := svc.ValidateToken(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID: "u-1",
			Role:   entities.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			UserID: "u-1",
			Role:   "root",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		forever, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			UserID: "u-1",
			Role:   entities.RoleUser,
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(forever)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
