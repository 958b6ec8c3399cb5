package core

import (
	"context"
	"errors"
)

// contextKey is an unexported type for context keys to prevent collisions
// with keys set by other packages.
type contextKey int

const (
	credentialsKey contextKey = iota
	principalKey
)

// ErrCredentialsNotFound is returned when no credentials are stored in the
// context, typically because the middleware has not run for this request.
var ErrCredentialsNotFound = errors.New("credentials not found in context")

// SetCredentials stores extracted credentials in the context. Adapters call
// this after a successful check so handlers can see who authenticated.
func SetCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

// GetCredentials retrieves the credentials placed in the context by a
// successful authentication check.
func GetCredentials(ctx context.Context) (Credentials, error) {
	creds, ok := ctx.Value(credentialsKey).(Credentials)
	if !ok {
		return Credentials{}, ErrCredentialsNotFound
	}
	return creds, nil
}

// HasCredentials checks if credentials exist in the context without
// retrieving them.
func HasCredentials(ctx context.Context) bool {
	_, ok := ctx.Value(credentialsKey).(Credentials)
	return ok
}

// principalHolder carries a principal outward from the validator to the
// wrapped handler. The holder itself is installed before the validator runs;
// mutation is safe because the validator and the handler run sequentially on
// the same request.
type principalHolder struct {
	value any
}

// WithPrincipal prepares the context to carry a principal set during
// validation. The middleware installs it on the request before the validator
// runs; validators then attach a principal with SetPrincipal and handlers
// read it with GetPrincipal.
func WithPrincipal(ctx context.Context) context.Context {
	return context.WithValue(ctx, principalKey, &principalHolder{})
}

// SetPrincipal records the authenticated principal (a user record, client
// row, token claims) for the wrapped handler. It reports false when the
// context was not prepared with WithPrincipal, which happens when the
// validator is invoked outside the middleware.
func SetPrincipal(ctx context.Context, principal any) bool {
	holder, ok := ctx.Value(principalKey).(*principalHolder)
	if !ok {
		return false
	}
	holder.value = principal
	return true
}

// GetPrincipal retrieves the principal attached by the validator, if any.
func GetPrincipal(ctx context.Context) (any, bool) {
	holder, ok := ctx.Value(principalKey).(*principalHolder)
	if !ok || holder.value == nil {
		return nil, false
	}
	return holder.value, true
}
