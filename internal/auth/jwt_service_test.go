package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	apperrors "shul/internal/errors"
	"shul/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(13, model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(13), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret")
		token, err := other.GenerateToken(1, model.RoleAdmin)
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now().Add(-48 * time.Hour)
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: 1,
			Role:   model.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
			},
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
		signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
