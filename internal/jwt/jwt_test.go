package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "alice@example.com")
	assert.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_TamperedToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "alice@example.com")
	assert.NoError(t, err)

	// Flip a character in the signature part.
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.ErrorIs(t, j.Validate(ctx, tampered), ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := New(WithSecretKey("secret-a"), WithExpiration(time.Minute))
	verifier := New(WithSecretKey("secret-b"), WithExpiration(time.Minute))

	token, err := issuer.Generate(ctx, 7, "bob@example.com")
	assert.NoError(t, err)

	assert.ErrorIs(t, verifier.Validate(ctx, token), ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok123"})

		token, err := j.GetTokenFromRequest(ctx, r)
		assert.NoError(t, err)
		assert.Equal(t, "tok123", token)
	})

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer tok456")

		token, err := j.GetTokenFromRequest(ctx, r)
		assert.NoError(t, err)
		assert.Equal(t, "tok456", token)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := j.GetTokenFromRequest(ctx, r)
		assert.Error(t, err)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "tok789")

		_, err := j.GetTokenFromRequest(ctx, r)
		assert.Error(t, err)
	})
}

func TestNewAuthCookie(t *testing.T) {
	c := NewAuthCookie("tok", 7*24*time.Hour, true)
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)

	expired := NewAuthCookie("", 0, false)
	assert.Equal(t, -1, expired.MaxAge)
}
