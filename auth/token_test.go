// token_test.go - Tests for token issue/verify
// Run with: go test ./...

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	token, err := IssueToken("admin", testSecret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := VerifyToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := IssueToken("admin", testSecret)
	assert.NoError(t, err)

	_, err = VerifyToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTamperedToken(t *testing.T) {
	token, err := IssueToken("admin", testSecret)
	assert.NoError(t, err)

	_, err = VerifyToken(token+"x", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Craft a token that expired an hour ago.
	claims := AdminClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
