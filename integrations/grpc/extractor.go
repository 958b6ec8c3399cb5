package grpc

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/gatehouse/go-auth-middleware/core"
)

// CredentialsExtractor extracts credentials from gRPC metadata. A missing
// required field is reported as a *core.MissingCredentialError so the
// interceptor can classify it as a denial before the validator runs.
type CredentialsExtractor func(ctx context.Context) (core.Credentials, error)

// Extractor errors.
var (
	// ErrMultipleAuthHeaders indicates multiple authorization metadata entries were provided.
	ErrMultipleAuthHeaders = errors.New("multiple authorization metadata entries are not allowed")

	// ErrInvalidAuthFormat indicates the authorization metadata format is invalid.
	ErrInvalidAuthFormat = errors.New("invalid authorization metadata format")
)

// BearerMetadataExtractor extracts a bearer token from the "authorization"
// metadata key, "Bearer <token>" format.
//
// gRPC normalizes incoming metadata keys to lowercase, so this extractor only
// checks the lowercase "authorization" key.
func BearerMetadataExtractor(ctx context.Context) (core.Credentials, error) {
	authHeader, err := authorizationValue(ctx)
	if err != nil {
		return core.Credentials{}, err
	}
	if authHeader == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "access_token"}
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return core.Credentials{}, ErrInvalidAuthFormat
	}

	return core.Credentials{AccessToken: parts[1]}, nil
}

// BasicMetadataExtractor extracts a username/password pair from the
// "authorization" metadata key, "Basic <base64(user:pass)>" format.
func BasicMetadataExtractor(ctx context.Context) (core.Credentials, error) {
	username, password, err := basicPair(ctx)
	if err != nil {
		return core.Credentials{}, err
	}
	if username == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "username"}
	}
	if password == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "password"}
	}

	return core.Credentials{Username: username, Password: password}, nil
}

// ClientMetadataExtractor extracts an OAuth client id/secret pair carried in
// the "authorization" metadata key using the Basic format.
func ClientMetadataExtractor(ctx context.Context) (core.Credentials, error) {
	clientID, clientSecret, err := basicPair(ctx)
	if err != nil {
		return core.Credentials{}, err
	}
	if clientID == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "client_id"}
	}
	if clientSecret == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "client_secret"}
	}

	return core.Credentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}

func basicPair(ctx context.Context) (string, string, error) {
	authHeader, err := authorizationValue(ctx)
	if err != nil {
		return "", "", err
	}
	if authHeader == "" {
		return "", "", nil
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", ErrInvalidAuthFormat
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", ErrInvalidAuthFormat
	}

	pair := strings.SplitN(string(decoded), ":", 2)
	if len(pair) != 2 {
		return "", "", ErrInvalidAuthFormat
	}

	return pair[0], pair[1], nil
}

func authorizationValue(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil // No metadata, no credentials (not an error).
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return "", nil
	}
	if len(authHeaders) > 1 {
		return "", ErrMultipleAuthHeaders
	}

	return authHeaders[0], nil
}
