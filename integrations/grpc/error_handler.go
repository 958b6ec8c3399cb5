package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatehouse/go-auth-middleware/core"
)

// ErrorHandler converts classified authentication errors to gRPC status
// errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps the classified conditions to gRPC status codes:
// an AccessDeniedError becomes Unauthenticated, a CallError keeps its
// HTTP-style intent (403 maps to PermissionDenied), and everything else is
// Internal so transport bugs do not masquerade as failed logins.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	var callErr *core.CallError
	if errors.As(err, &callErr) {
		return status.Error(codeFor(callErr.Code), callErr.Message)
	}

	var denied *core.AccessDeniedError
	if errors.As(err, &denied) {
		return status.Error(codes.Unauthenticated, denied.Error())
	}

	return status.Error(codes.Internal, "unable to check credentials")
}

func codeFor(httpCode int) codes.Code {
	switch httpCode {
	case 400:
		return codes.InvalidArgument
	case 401:
		return codes.Unauthenticated
	case 403:
		return codes.PermissionDenied
	case 404:
		return codes.NotFound
	case 429:
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}
