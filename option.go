package authmiddleware

import "errors"

// Option configures the Middleware.
// Returns error for validation failures.
type Option func(*Middleware) error

// Sentinel errors for configuration validation.
var (
	ErrValidatorNil    = errors.New("validator cannot be nil (omit WithValidator instead)")
	ErrValidatorFixed  = errors.New("validator is taken positionally by the scheme constructor")
	ErrErrorHandlerNil = errors.New("errorHandler cannot be nil")
	ErrLoggerNil       = errors.New("logger cannot be nil")
	ErrMetricsNil      = errors.New("metrics cannot be nil")
	ErrTracerNil       = errors.New("tracer cannot be nil")
	ErrRealmFixed      = errors.New("realm is fixed by the scheme and cannot be overridden")
)

// WithRealm sets the realm label for the generic middleware. The scheme
// constructors fix their realm ("basic", "Bearer") and reject this option.
func WithRealm(realm string) Option {
	return func(m *Middleware) error {
		if m.scheme != nil {
			return ErrRealmFixed
		}
		m.realm = realm
		return nil
	}
}

// WithValidator sets the target callback for the generic middleware. It is
// deliberately optional there: a generic middleware without a validator fails
// on first call with the setup-error CallError, matching ad-hoc use of the
// building block. The scheme constructors take their validator positionally
// and reject this option.
func WithValidator(v Validator) Option {
	return func(m *Middleware) error {
		if m.scheme != nil {
			return ErrValidatorFixed
		}
		if v == nil {
			return ErrValidatorNil
		}
		m.validator = v
		return nil
	}
}

// WithErrorHandler sets the handler called when a check fails.
// See the ErrorHandler type for more information.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Middleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithLogger sets an optional logger used throughout extraction and
// classification. Adapters for logrus, zap, and zerolog are provided.
func WithLogger(logger Logger) Option {
	return func(m *Middleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink for allow/deny counters.
//
// Default: NoopMetrics
func WithMetrics(metrics Metrics) Option {
	return func(m *Middleware) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		m.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer used to record one span per check.
//
// Default: NoopTracer
func WithTracer(tracer Tracer) Option {
	return func(m *Middleware) error {
		if tracer == nil {
			return ErrTracerNil
		}
		m.tracer = tracer
		return nil
	}
}
