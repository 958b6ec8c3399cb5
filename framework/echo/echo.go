// Package authecho adapts the authentication middleware to Echo.
package authecho

import (
	"github.com/labstack/echo/v4"

	authmiddleware "github.com/gatehouse/go-auth-middleware"
	"github.com/gatehouse/go-auth-middleware/core"
)

// DefaultCredentialsKey is the Echo context key the extracted credentials are
// stored under after a successful check.
const DefaultCredentialsKey = "auth_credentials"

type config struct {
	errorHandler func(echo.Context, error)
	contextKey   string
}

// Middleware wraps an authmiddleware.Middleware into an echo.MiddlewareFunc.
// On success the credentials are stored in the Echo context and the request
// context, then the next handler runs; on failure the error handler writes
// the response and the chain stops.
func Middleware(mw *authmiddleware.Middleware, opts ...Option) echo.MiddlewareFunc {
	cfg := &config{
		errorHandler: defaultErrorHandler,
		contextKey:   DefaultCredentialsKey,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().Clone(core.WithPrincipal(c.Request().Context())))

			creds, err := mw.Authenticate(c.Request())
			if err != nil {
				cfg.errorHandler(c, err)
				return nil // response already written
			}

			c.Set(cfg.contextKey, creds)
			c.SetRequest(c.Request().Clone(core.SetCredentials(c.Request().Context(), creds)))
			return next(c)
		}
	}
}

// GetCredentials extracts the credentials stored by the middleware from the
// Echo context.
func GetCredentials(c echo.Context, contextKey string) (core.Credentials, bool) {
	creds, ok := c.Get(contextKey).(core.Credentials)
	return creds, ok
}

func defaultErrorHandler(c echo.Context, err error) {
	authmiddleware.DefaultErrorHandler(c.Response(), c.Request(), err)
}
