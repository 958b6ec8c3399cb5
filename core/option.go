package core

import "errors"

// Option is a function that configures the Core.
// Options return errors to enable validation during construction.
type Option func(*Core) error

// Sentinel errors for configuration validation.
var (
	ErrNilLogger = errors.New("logger cannot be nil")
)

// New creates a new Core instance with the provided options.
//
// A Core with no options classifies for the empty realm, which is what the
// generic decorator uses when no realm override is supplied.
func New(opts ...Option) (*Core, error) {
	c := &Core{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithRealm sets the realm label attached to denial errors.
func WithRealm(realm string) Option {
	return func(c *Core) error {
		c.realm = realm
		return nil
	}
}

// WithLogger sets an optional logger for classification decisions.
func WithLogger(logger Logger) Option {
	return func(c *Core) error {
		if logger == nil {
			return ErrNilLogger
		}
		c.logger = logger
		return nil
	}
}
