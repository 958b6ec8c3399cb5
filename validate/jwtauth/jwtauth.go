// Package jwtauth builds bearer-token validators backed by JWT verification.
// The middleware core treats the validator as opaque; this package is a
// convenience for the common case where the access token is a JWT.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	authmiddleware "github.com/gatehouse/go-auth-middleware"
)

// CustomClaims defines any custom data / claims wanted. The validator calls
// Validate after signature verification, which is where custom validation
// logic goes.
type CustomClaims interface {
	jwt.Claims
	Validate(context.Context) error
}

// Option is how options for the validator are setup.
type Option func(*validator)

// WithCustomClaims sets up a function that returns the object custom claims
// are unmarshalled into and the object Validate is called on. Without this
// option only the registered claims are checked.
func WithCustomClaims(f func() CustomClaims) Option {
	return func(v *validator) {
		v.customClaims = f
	}
}

// WithIssuer requires the iss claim to match.
func WithIssuer(issuer string) Option {
	return func(v *validator) {
		v.issuer = issuer
	}
}

// WithAudience requires the aud claim to contain the given audience.
func WithAudience(audience string) Option {
	return func(v *validator) {
		v.audience = audience
	}
}

// New builds a TokenValidator that verifies the access token as a JWT using
// the given key function and signature algorithm. Verification failures make
// the validator return false with the parse error, which the middleware
// classifies as an access denial for the Bearer realm.
func New(keyFunc jwt.Keyfunc, signatureAlgorithm string, opts ...Option) (authmiddleware.TokenValidator, error) {
	if keyFunc == nil {
		return nil, errors.New("keyFunc is required but was nil")
	}
	if signatureAlgorithm == "" {
		return nil, errors.New("signatureAlgorithm is required but was empty")
	}

	v := &validator{
		keyFunc:            keyFunc,
		signatureAlgorithm: signatureAlgorithm,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v.validate, nil
}

type validator struct {
	keyFunc            jwt.Keyfunc
	signatureAlgorithm string
	issuer             string
	audience           string
	customClaims       func() CustomClaims
}

func (v *validator) validate(ctx context.Context, _ *http.Request, accessToken string) (bool, error) {
	var claims jwt.Claims = &jwt.RegisteredClaims{}
	if v.customClaims != nil {
		claims = v.customClaims()
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{v.signatureAlgorithm})}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	if _, err := jwt.ParseWithClaims(accessToken, claims, v.keyFunc, parserOpts...); err != nil {
		return false, fmt.Errorf("could not parse the token: %w", err)
	}

	if custom, ok := claims.(CustomClaims); ok {
		if err := custom.Validate(ctx); err != nil {
			return false, fmt.Errorf("custom claims rejected: %w", err)
		}
	}

	return true, nil
}
