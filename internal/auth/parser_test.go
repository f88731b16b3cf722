package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	parser := NewParser("secret")
	userID := uuid.New()

	raw, err := parser.Sign(Claims{
		UserID: userID,
		Role:   "agent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	claims, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "agent", claims.Role)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	raw, err := NewParser("other").Sign(Claims{UserID: uuid.New(), Role: "agent"})
	require.NoError(t, err)

	_, err = NewParser("secret").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	parser := NewParser("secret")
	raw, err := parser.Sign(Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	require.NoError(t, err)

	_, err = parser.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingUser(t *testing.T) {
	parser := NewParser("secret")
	raw, err := parser.Sign(Claims{Role: "agent"})
	require.NoError(t, err)

	_, err = parser.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
