package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("top-secret")

func keyFunc(*jwt.Token) (interface{}, error) {
	return signingKey, nil
}

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

type testClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`

	validateErr error
}

func (c *testClaims) Validate(context.Context) error {
	return c.validateErr
}

func TestNew(t *testing.T) {
	t.Run("requires a key function", func(t *testing.T) {
		_, err := New(nil, "HS256")
		assert.EqualError(t, err, "keyFunc is required but was nil")
	})

	t.Run("requires a signature algorithm", func(t *testing.T) {
		_, err := New(keyFunc, "")
		assert.EqualError(t, err, "signatureAlgorithm is required but was empty")
	})
}

func TestValidate(t *testing.T) {
	validClaims := jwt.RegisteredClaims{
		Issuer:    "https://issuer.example.com/",
		Audience:  jwt.ClaimStrings{"https://api.example.com/"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	t.Run("accepts a valid token", func(t *testing.T) {
		validate, err := New(keyFunc, "HS256",
			WithIssuer("https://issuer.example.com/"),
			WithAudience("https://api.example.com/"),
		)
		require.NoError(t, err)

		ok, err := validate(context.Background(), nil, signToken(t, validClaims))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		validate, err := New(keyFunc, "HS256")
		require.NoError(t, err)

		token := signToken(t, validClaims)
		ok, err := validate(context.Background(), nil, token+"x")

		assert.False(t, ok)
		assert.ErrorContains(t, err, "could not parse the token")
	})

	t.Run("rejects an unexpected signing algorithm", func(t *testing.T) {
		validate, err := New(keyFunc, "HS384")
		require.NoError(t, err)

		ok, err := validate(context.Background(), nil, signToken(t, validClaims))

		assert.False(t, ok)
		assert.ErrorContains(t, err, "could not parse the token")
	})

	t.Run("rejects a wrong issuer", func(t *testing.T) {
		validate, err := New(keyFunc, "HS256", WithIssuer("https://other.example.com/"))
		require.NoError(t, err)

		ok, err := validate(context.Background(), nil, signToken(t, validClaims))

		assert.False(t, ok)
		assert.ErrorContains(t, err, "could not parse the token")
	})

	t.Run("rejects a wrong audience", func(t *testing.T) {
		validate, err := New(keyFunc, "HS256", WithAudience("https://other-api.example.com/"))
		require.NoError(t, err)

		ok, err := validate(context.Background(), nil, signToken(t, validClaims))

		assert.False(t, ok)
		assert.ErrorContains(t, err, "could not parse the token")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		validate, err := New(keyFunc, "HS256")
		require.NoError(t, err)

		expired := validClaims
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		ok, err := validate(context.Background(), nil, signToken(t, expired))

		assert.False(t, ok)
		assert.ErrorContains(t, err, "could not parse the token")
	})

	t.Run("runs custom claim validation", func(t *testing.T) {
		cause := errors.New("missing scope")
		validate, err := New(keyFunc, "HS256", WithCustomClaims(func() CustomClaims {
			return &testClaims{validateErr: cause}
		}))
		require.NoError(t, err)

		token := signToken(t, &testClaims{RegisteredClaims: validClaims, Scope: "read"})
		ok, err := validate(context.Background(), nil, token)

		assert.False(t, ok)
		assert.ErrorIs(t, err, cause)
		assert.ErrorContains(t, err, "custom claims rejected")
	})

	t.Run("custom claims are unmarshalled from the token", func(t *testing.T) {
		var seen *testClaims
		validate, err := New(keyFunc, "HS256", WithCustomClaims(func() CustomClaims {
			seen = &testClaims{}
			return seen
		}))
		require.NoError(t, err)

		token := signToken(t, &testClaims{RegisteredClaims: validClaims, Scope: "read write"})
		ok, err := validate(context.Background(), nil, token)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "read write", seen.Scope)
	})
}
