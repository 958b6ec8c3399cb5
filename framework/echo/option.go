package authecho

import "github.com/labstack/echo/v4"

// Option is a function that configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler func(echo.Context, error)) Option {
	return func(cfg *config) {
		if handler != nil {
			cfg.errorHandler = handler
		}
	}
}

// WithContextKey sets a custom context key to store credentials.
func WithContextKey(key string) Option {
	return func(cfg *config) {
		if key != "" {
			cfg.contextKey = key
		}
	}
}
