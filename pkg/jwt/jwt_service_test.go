package jwt

import (
	"testing"
	"time"

	"recipevault/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	identity := domain.Identity{
		UserID:          "ext-1",
		Email:           "alice@example.com",
		FirstName:       "Alice",
		LastName:        "Smith",
		ProfileImageURL: "https://cdn.example.com/alice.png",
	}

	token, err := service.GenerateToken(identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	minter := NewJWTService()
	token, err := minter.GenerateToken(domain.Identity{UserID: "ext-1"}, time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	verifier := NewJWTService()

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token, err := service.GenerateToken(domain.Identity{UserID: "ext-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenMissingSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token, err := service.GenerateToken(domain.Identity{}, time.Hour)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
