// Package static provides fixed-credential validators for tests, examples,
// and small deployments. Credentials are hashed at construction and compared
// in constant time; the plaintext configuration value is not retained.
package static

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	authmiddleware "github.com/gatehouse/go-auth-middleware"
)

// Basic returns a BasicValidator accepting exactly the given pair.
func Basic(username, password string) authmiddleware.BasicValidator {
	wantUser := sha256.Sum256([]byte(username))
	wantPass := sha256.Sum256([]byte(password))

	return func(_ context.Context, _ *http.Request, username, password string) (bool, error) {
		return equal(wantUser, username) && equal(wantPass, password), nil
	}
}

// Client returns a ClientValidator accepting exactly the given pair.
func Client(clientID, clientSecret string) authmiddleware.ClientValidator {
	wantID := sha256.Sum256([]byte(clientID))
	wantSecret := sha256.Sum256([]byte(clientSecret))

	return func(_ context.Context, _ *http.Request, clientID, clientSecret string) (bool, error) {
		return equal(wantID, clientID) && equal(wantSecret, clientSecret), nil
	}
}

// Token returns a TokenValidator accepting exactly the given token.
func Token(accessToken string) authmiddleware.TokenValidator {
	want := sha256.Sum256([]byte(accessToken))

	return func(_ context.Context, _ *http.Request, accessToken string) (bool, error) {
		return equal(want, accessToken), nil
	}
}

// equal hashes the candidate and compares digests in constant time, so
// mismatched lengths do not leak timing either.
func equal(want [32]byte, got string) bool {
	gotSum := sha256.Sum256([]byte(got))
	return subtle.ConstantTimeCompare(want[:], gotSum[:]) == 1
}
