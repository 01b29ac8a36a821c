package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "bookstore-api",
		Audience: "bookstore-client",
		TTL:      6 * time.Hour,
	}
}

func TestJWTer_IssueAndParse(t *testing.T) {
	j := newTestJWTer()

	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "bookstore-api", claims.Issuer)
}

func TestJWTer_SixHourValidity(t *testing.T) {
	j := newTestJWTer()

	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 6*time.Hour, window)
}

func TestJWTer_RejectsWrongSecret(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Secret = []byte("different-secret")
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTer_RejectsWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Issuer = "someone-else"
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTer_RejectsWrongAudience(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Audience = "other-client"
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTer_RejectsExpiredToken(t *testing.T) {
	j := newTestJWTer()
	j.TTL = -2 * time.Minute // beyond the 60s parse leeway

	token, err := j.Issue("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestJWTer_RejectsGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not-a-token")
	assert.Error(t, err)
}
