// Package grpc provides server interceptors that run the same
// extraction/validation/classification pipeline as the HTTP middleware, with
// credentials carried in gRPC metadata instead of headers.
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/gatehouse/go-auth-middleware/core"
)

// Validator is the caller-supplied target callback for the interceptor.
// There is no HTTP request here; anything beyond the extracted credentials
// must come from the context.
type Validator func(ctx context.Context, creds core.Credentials) (bool, error)

// Interceptor provides credential validation for gRPC servers.
type Interceptor struct {
	core            *core.Core
	extractor       CredentialsExtractor
	validator       Validator
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          core.Logger

	// Temporary field used during construction.
	realm string
}

// New creates a gRPC interceptor with the provided options. A validator is
// required: wiring an interceptor without one is the same setup error the
// HTTP decorators report.
func New(opts ...Option) (*Interceptor, error) {
	i := &Interceptor{
		extractor:       BearerMetadataExtractor,
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
		realm:           "Bearer",
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	if i.validator == nil {
		return nil, core.NewSetupError()
	}

	coreOpts := []core.Option{core.WithRealm(i.realm)}
	if i.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(i.logger))
	}
	c, err := core.New(coreOpts...)
	if err != nil {
		return nil, err
	}
	i.core = c

	return i, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that validates
// credentials before the handler runs. On success the credentials are placed
// in the handler context.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if i.excludedMethods[info.FullMethod] {
			if i.logger != nil {
				i.logger.Debugf("skipping authentication for excluded method %s", info.FullMethod)
			}
			return handler(ctx, req)
		}

		validatedCtx, err := i.check(ctx)
		if err != nil {
			return nil, err
		}

		return handler(validatedCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that
// validates credentials before the stream handler runs.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excludedMethods[info.FullMethod] {
			return handler(srv, ss)
		}

		validatedCtx, err := i.check(ss.Context())
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: validatedCtx})
	}
}

// check runs extraction and classification for one call and returns the
// context enriched with the credentials, or a gRPC status error.
func (i *Interceptor) check(ctx context.Context) (context.Context, error) {
	ctx = core.WithPrincipal(ctx)

	creds, err := i.extractor(ctx)
	if err != nil {
		return nil, i.errorHandler(i.core.Deny(err))
	}

	verdict := func(ctx context.Context) (bool, error) {
		return i.validator(ctx, creds)
	}
	if err := i.core.Evaluate(ctx, verdict); err != nil {
		return nil, i.errorHandler(err)
	}

	return core.SetCredentials(ctx, creds), nil
}

// wrappedServerStream overrides the stream context with the validated one.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
