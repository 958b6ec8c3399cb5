// Package authgin adapts the authentication middleware to Gin.
package authgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authmiddleware "github.com/gatehouse/go-auth-middleware"
	"github.com/gatehouse/go-auth-middleware/core"
)

// DefaultCredentialsKey is the Gin context key the extracted credentials are
// stored under after a successful check.
const DefaultCredentialsKey = "auth_credentials"

// ErrMissingCredentials is returned by GetCredentials when no credentials are
// stored in the Gin context.
var ErrMissingCredentials = errors.New("no credentials found in context")

type config struct {
	errorHandler func(*gin.Context, error)
	contextKey   string
}

// Middleware wraps an authmiddleware.Middleware into a gin.HandlerFunc. On
// success the extracted credentials are stored both in the Gin context (under
// the configured key) and in the request context, then the chain continues;
// on failure the error handler responds and the chain is aborted.
func Middleware(mw *authmiddleware.Middleware, opts ...Option) gin.HandlerFunc {
	cfg := &config{
		errorHandler: defaultErrorHandler,
		contextKey:   DefaultCredentialsKey,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *gin.Context) {
		c.Request = c.Request.Clone(core.WithPrincipal(c.Request.Context()))

		creds, err := mw.Authenticate(c.Request)
		if err != nil {
			cfg.errorHandler(c, err)
			c.Abort()
			return
		}

		c.Set(cfg.contextKey, creds)
		c.Request = c.Request.Clone(core.SetCredentials(c.Request.Context(), creds))
		c.Next()
	}
}

// GetCredentials retrieves the credentials stored by the middleware.
func GetCredentials(c *gin.Context, contextKey string) (core.Credentials, error) {
	value, ok := c.Get(contextKey)
	if !ok {
		return core.Credentials{}, ErrMissingCredentials
	}

	creds, ok := value.(core.Credentials)
	if !ok {
		return core.Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}

// defaultErrorHandler reuses the root package's classification-aware response
// translation through the Gin response writer.
func defaultErrorHandler(c *gin.Context, err error) {
	authmiddleware.DefaultErrorHandler(c.Writer, c.Request, err)
}

// StatusFor maps a classified error to its HTTP status code, for custom
// error handlers that render their own body.
func StatusFor(err error) int {
	var callErr *core.CallError
	if errors.As(err, &callErr) {
		return callErr.Code
	}
	if errors.Is(err, core.ErrAccessDenied) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
