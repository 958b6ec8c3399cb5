package authgin

import "github.com/gin-gonic/gin"

// Option defines a functional option for configuring the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler for the middleware.
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(cfg *config) {
		if handler != nil {
			cfg.errorHandler = handler
		}
	}
}

// WithContextKey sets a custom Gin context key to store credentials.
func WithContextKey(key string) Option {
	return func(cfg *config) {
		if key != "" {
			cfg.contextKey = key
		}
	}
}
