package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, err := tm.Mint(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret-a", time.Hour)
	other := auth.NewTokenManager("secret-b", time.Hour)

	token, err := tm.Mint(1, "user@example.com")
	assert.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Mint(1, "user@example.com")
	assert.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.Error(t, err)
}
