// Package core provides transport-agnostic classification of authentication
// outcomes. It knows nothing about HTTP or gRPC; adapters extract credentials
// from their transport, bind the caller-supplied validator into a Verdict,
// and let Evaluate turn the result into either "proceed" or a classified
// error.
package core

import (
	"context"
	"errors"
	"time"
)

// Logger defines an optional logging interface for the core.
// Adapters for common logging libraries live in the root package.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Verdict is a caller-supplied validator already bound to the credentials of
// a single request. It reports whether the credentials are acceptable. A nil
// Verdict means no validator was wired up at all, which Evaluate classifies
// as a setup error rather than an authentication failure.
type Verdict func(ctx context.Context) (bool, error)

// Core classifies validator outcomes for one authentication realm. A Core is
// built once per decorated handler and is safe for concurrent use: its fields
// are never written after construction.
type Core struct {
	realm  string
	logger Logger
}

// Realm returns the realm label attached to denial errors.
func (c *Core) Realm() string {
	return c.realm
}

// Evaluate runs the verdict and classifies its outcome. Classification is
// ranked and the order is load-bearing:
//
//  1. nil verdict: the decorator was wired without a validator, a caller
//     error producing the setup CallError, never an AccessDeniedError.
//  2. the validator returned a *CallError: passed through unchanged so
//     validators can signal precise HTTP errors.
//  3. the validator returned any other error: normalized to an
//     AccessDeniedError carrying the realm and the underlying message.
//  4. the validator returned false: an AccessDeniedError for the realm.
//  5. the validator returned true: nil, the handler may run.
func (c *Core) Evaluate(ctx context.Context, verdict Verdict) error {
	if verdict == nil {
		if c.logger != nil {
			c.logger.Errorf("no validator configured for realm %q", c.realm)
		}
		return NewSetupError()
	}

	start := time.Now()
	ok, err := verdict(ctx)
	duration := time.Since(start)

	if err != nil {
		var callErr *CallError
		if errors.As(err, &callErr) {
			// Validators may raise CallErrors intentionally; re-raising
			// them unchanged keeps their status code intact.
			return err
		}

		if c.logger != nil {
			c.logger.Debugf("validator failed for realm %q after %s: %v", c.realm, duration, err)
		}
		return &AccessDeniedError{Realm: c.realm, Message: err.Error(), cause: err}
	}

	if !ok {
		if c.logger != nil {
			c.logger.Debugf("validator rejected credentials for realm %q after %s", c.realm, duration)
		}
		return &AccessDeniedError{Realm: c.realm, Message: "validator rejected credentials"}
	}

	if c.logger != nil {
		c.logger.Debugf("validator accepted credentials for realm %q after %s", c.realm, duration)
	}
	return nil
}

// Deny converts an extraction failure into the denial raised before the
// validator ever runs. Missing or malformed credentials go through here so
// they can never be mistaken for a setup error.
func (c *Core) Deny(cause error) error {
	if c.logger != nil {
		c.logger.Debugf("credential extraction failed for realm %q: %v", c.realm, cause)
	}
	return &AccessDeniedError{Realm: c.realm, Message: cause.Error(), cause: cause}
}
