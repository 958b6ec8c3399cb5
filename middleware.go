package authmiddleware

import (
	"context"
	"net/http"

	"github.com/gatehouse/go-auth-middleware/core"
)

// Validator is the caller-supplied target callback for the generic decorator.
// It receives the request plus whatever credentials the scheme extracted and
// reports whether they are acceptable. Returning an error denies the request;
// a *core.CallError is passed through unchanged so precise HTTP errors can be
// signaled from inside the validator.
type Validator func(ctx context.Context, r *http.Request, creds core.Credentials) (bool, error)

// BasicValidator is the target callback for NewBasic.
type BasicValidator func(ctx context.Context, r *http.Request, username, password string) (bool, error)

// ClientValidator is the target callback for NewClientCredentials.
type ClientValidator func(ctx context.Context, r *http.Request, clientID, clientSecret string) (bool, error)

// TokenValidator is the target callback for NewToken.
type TokenValidator func(ctx context.Context, r *http.Request, accessToken string) (bool, error)

// Middleware decorates handlers with pre-invocation authentication for one
// scheme. Construct it once when the handler is registered and reuse it for
// every request: all fields are fixed at construction time and every check is
// stateless.
type Middleware struct {
	core         *core.Core
	scheme       Scheme
	validator    Validator
	errorHandler ErrorHandler
	logger       Logger
	metrics      Metrics
	tracer       Tracer

	// Temporary field used during construction of the generic form.
	realm string
}

// New constructs the generic authentication middleware. It performs no
// credential extraction of its own: the validator receives the bare request
// and is expected to pull out whatever it needs. Unlike the scheme
// constructors, New tolerates a missing validator; the first call then fails
// with the setup-error CallError rather than an access denial. Use WithRealm
// to label denial errors.
//
// Example:
//
//	mw, err := authmiddleware.New(
//	    authmiddleware.WithRealm("Bearer"),
//	    authmiddleware.WithValidator(func(ctx context.Context, r *http.Request, _ core.Credentials) (bool, error) {
//	        token, err := authmiddleware.BearerTokenExtractor(r)
//	        if err != nil {
//	            return false, err
//	        }
//	        return token == "letmein", nil
//	    }),
//	)
func New(opts ...Option) (*Middleware, error) {
	m := &Middleware{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.scheme = genericScheme{realm: m.realm}

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewBasic constructs middleware that authenticates the username/password
// pair from the request's Basic auth header and fixes the realm to "basic".
// The validator is required: passing nil fails construction with the
// setup-error CallError.
func NewBasic(validate BasicValidator, opts ...Option) (*Middleware, error) {
	if validate == nil {
		return nil, core.NewSetupError()
	}

	return newScheme(basicScheme{}, func(ctx context.Context, r *http.Request, creds core.Credentials) (bool, error) {
		return validate(ctx, r, creds.Username, creds.Password)
	}, opts)
}

// NewClientCredentials constructs middleware that authenticates the OAuth
// client_id/client_secret pair. It shares the "basic" realm with NewBasic;
// only extraction differs. The validator is required.
func NewClientCredentials(validate ClientValidator, opts ...Option) (*Middleware, error) {
	if validate == nil {
		return nil, core.NewSetupError()
	}

	return newScheme(clientScheme{}, func(ctx context.Context, r *http.Request, creds core.Credentials) (bool, error) {
		return validate(ctx, r, creds.ClientID, creds.ClientSecret)
	}, opts)
}

// NewToken constructs middleware that authenticates the access token from the
// Authorization Bearer header and fixes the realm to "Bearer". The validator
// is required.
func NewToken(validate TokenValidator, opts ...Option) (*Middleware, error) {
	if validate == nil {
		return nil, core.NewSetupError()
	}

	return newScheme(tokenScheme{}, func(ctx context.Context, r *http.Request, creds core.Credentials) (bool, error) {
		return validate(ctx, r, creds.AccessToken)
	}, opts)
}

func newScheme(scheme Scheme, validator Validator, opts []Option) (*Middleware, error) {
	m := &Middleware{
		scheme:    scheme,
		validator: validator,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// finish applies defaults and builds the classification core. After finish
// returns, the middleware is fully published and must not be mutated.
func (m *Middleware) finish() error {
	if m.errorHandler == nil {
		m.errorHandler = DefaultErrorHandler
	}
	if m.metrics == nil {
		m.metrics = &NoopMetrics{}
	}
	if m.tracer == nil {
		m.tracer = &NoopTracer{}
	}

	coreOpts := []core.Option{core.WithRealm(m.scheme.Realm())}
	if m.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(m.logger))
	}

	c, err := core.New(coreOpts...)
	if err != nil {
		return err
	}
	m.core = c
	return nil
}

// Check runs extraction and validation for a single request without touching
// a ResponseWriter. It returns nil when the wrapped handler may run, a
// *core.AccessDeniedError when credentials are missing or rejected, and a
// *core.CallError when the decorator itself is miswired (or when the
// validator raised one deliberately).
func (m *Middleware) Check(r *http.Request) error {
	_, err := m.Authenticate(r)
	return err
}

// Authenticate runs the same pipeline as Check and additionally returns the
// extracted credentials on success. Transport adapters use it to publish the
// credentials into their own context.
func (m *Middleware) Authenticate(r *http.Request) (core.Credentials, error) {
	realm := m.scheme.Realm()

	span := m.tracer.StartSpan("authmiddleware.check")
	defer span.Finish()
	span.SetTag("realm", realm)

	if m.logger != nil {
		m.logger.Debugf("extracting %q credentials for %s %s", realm, r.Method, r.URL.Path)
	}

	creds, err := m.scheme.Extract(r)
	if err != nil {
		// Extraction failures deny before the validator is ever invoked.
		m.metrics.IncCounter("authmiddleware_denied_total", map[string]string{"realm": realm, "reason": "extraction"})
		return core.Credentials{}, m.core.Deny(err)
	}

	var verdict core.Verdict
	if m.validator != nil {
		validate := m.validator
		verdict = func(ctx context.Context) (bool, error) {
			return validate(ctx, r, creds)
		}
	}

	if err := m.core.Evaluate(r.Context(), verdict); err != nil {
		reason := "validator"
		if verdict == nil {
			reason = "setup"
		}
		m.metrics.IncCounter("authmiddleware_denied_total", map[string]string{"realm": realm, "reason": reason})
		return core.Credentials{}, err
	}

	m.metrics.IncCounter("authmiddleware_allowed_total", map[string]string{"realm": realm})
	return creds, nil
}

// HandlerWithNext is a special implementation for Negroni, but could be used
// elsewhere. On success the extracted credentials, plus any principal the
// validator attached via core.SetPrincipal, are published to the request
// context before next runs.
func (m *Middleware) HandlerWithNext(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	r = r.Clone(core.WithPrincipal(r.Context()))

	creds, err := m.Authenticate(r)
	if err != nil {
		m.errorHandler(w, r, err)
		return
	}

	if next != nil {
		next(w, r.Clone(core.SetCredentials(r.Context(), creds)))
	}
}

// Handler wraps next with the authentication check. The wrapped handler has
// the identical calling convention; on success next runs with the original
// request (plus credentials in its context) and its response flows back
// untouched.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.HandlerWithNext(w, r, next.ServeHTTP)
	})
}
