package authmiddleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gatehouse/go-auth-middleware/core"
)

// ErrorHandler is a handler which is called when a check fails. It determines
// the response of the Middleware for the two classified conditions. The err
// can be inspected with errors.As against *core.CallError and
// *core.AccessDeniedError. The default handler answers a CallError with its
// own status code, an AccessDeniedError with 401 plus a WWW-Authenticate
// challenge naming the realm, and anything else with 500. If you implement
// your own ErrorHandler you MUST distinguish these conditions: collapsing the
// setup error into the denial path hides broken wiring behind what looks like
// a failed login.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler is the default error handler implementation for the
// Middleware. If an error handler is not provided via the WithErrorHandler
// option this will be used.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")

	var callErr *core.CallError
	var denied *core.AccessDeniedError
	switch {
	case errors.As(err, &callErr):
		w.WriteHeader(callErr.Code)
		_, _ = fmt.Fprintf(w, `{"message":%q}`, callErr.Message)
	case errors.As(err, &denied):
		w.Header().Set("WWW-Authenticate", Challenge(denied.Realm))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Access denied."}`))
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Something went wrong while checking authentication."}`))
	}
}

// Challenge renders the WWW-Authenticate value for a realm. The "basic" realm
// maps to the Basic scheme; every other realm is challenged as Bearer, which
// covers both the token scheme and custom realms on the generic form.
func Challenge(realm string) string {
	if strings.EqualFold(realm, "basic") {
		return fmt.Sprintf("Basic realm=%q", realm)
	}
	if realm == "" {
		return "Bearer"
	}
	return fmt.Sprintf("Bearer realm=%q", realm)
}
