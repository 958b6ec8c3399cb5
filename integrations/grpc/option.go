package grpc

import (
	"errors"

	"github.com/gatehouse/go-auth-middleware/core"
)

// Option configures the Interceptor.
type Option func(*Interceptor) error

// Sentinel errors for configuration validation.
var (
	ErrExtractorNil    = errors.New("extractor cannot be nil")
	ErrErrorHandlerNil = errors.New("errorHandler cannot be nil")
	ErrLoggerNil       = errors.New("logger cannot be nil")
)

// WithValidator sets the target callback (required).
func WithValidator(v Validator) Option {
	return func(i *Interceptor) error {
		if v == nil {
			return core.NewSetupError()
		}
		i.validator = v
		return nil
	}
}

// WithRealm overrides the realm reported on denials.
//
// Default: "Bearer"
func WithRealm(realm string) Option {
	return func(i *Interceptor) error {
		i.realm = realm
		return nil
	}
}

// WithCredentialsExtractor sets the metadata extractor.
//
// Default: BearerMetadataExtractor
func WithCredentialsExtractor(e CredentialsExtractor) Option {
	return func(i *Interceptor) error {
		if e == nil {
			return ErrExtractorNil
		}
		i.extractor = e
		return nil
	}
}

// WithErrorHandler sets the status translation for failed checks.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(i *Interceptor) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		i.errorHandler = h
		return nil
	}
}

// WithExcludedMethods configures full method names (e.g.
// "/health.v1.Health/Check") that skip authentication.
func WithExcludedMethods(methods ...string) Option {
	return func(i *Interceptor) error {
		for _, m := range methods {
			i.excludedMethods[m] = true
		}
		return nil
	}
}

// WithLogger sets an optional logger.
func WithLogger(logger core.Logger) Option {
	return func(i *Interceptor) error {
		if logger == nil {
			return ErrLoggerNil
		}
		i.logger = logger
		return nil
	}
}
