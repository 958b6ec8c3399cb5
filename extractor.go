package authmiddleware

import (
	"errors"
	"net/http"
	"strings"
)

// ErrMalformedAuthHeader is returned when an Authorization header is present
// but does not follow the "Bearer {token}" format.
var ErrMalformedAuthHeader = errors.New(`authorization header format must be "Bearer {token}"`)

// BasicAuthExtractor returns the username and password from the request's
// Basic auth header. Absence is not an error: both values are empty when no
// well-formed Basic header is present.
func BasicAuthExtractor(r *http.Request) (username, password string) {
	username, password, _ = r.BasicAuth()
	return username, password
}

// BearerTokenExtractor returns the access token from the request's
// Authorization Bearer header. A missing header yields an empty token and no
// error; a header using a different scheme or the wrong shape yields
// ErrMalformedAuthHeader.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil // No error, just no token.
	}

	authHeaderParts := strings.Fields(authHeader)
	if len(authHeaderParts) != 2 || !strings.EqualFold(authHeaderParts[0], "bearer") {
		return "", ErrMalformedAuthHeader
	}

	return authHeaderParts[1], nil
}

// ClientCredentialsExtractor returns the OAuth client id and secret from the
// request. The Basic auth header is preferred; the client_id and
// client_secret query parameters are the fallback. Absence is not an error.
func ClientCredentialsExtractor(r *http.Request) (clientID, clientSecret string) {
	if id, secret, ok := r.BasicAuth(); ok && id != "" {
		return id, secret
	}

	query := r.URL.Query()
	return query.Get("client_id"), query.Get("client_secret")
}
