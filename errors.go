package authmiddleware

import "github.com/gatehouse/go-auth-middleware/core"

// The classified error conditions live in the core package so transport
// adapters can share them; they are aliased here for convenience.
type (
	// CallError is the configuration/protocol-level error carrying an
	// HTTP-style status and message.
	CallError = core.CallError

	// AccessDeniedError is the classified authentication failure carrying
	// the realm of the decorator that raised it.
	AccessDeniedError = core.AccessDeniedError

	// MissingCredentialError reports a required credential field that was
	// empty or absent.
	MissingCredentialError = core.MissingCredentialError
)

var (
	// ErrAccessDenied matches every AccessDeniedError via errors.Is.
	ErrAccessDenied = core.ErrAccessDenied

	// ErrCredentialMissing matches every MissingCredentialError via errors.Is.
	ErrCredentialMissing = core.ErrCredentialMissing

	// NewCallError creates a CallError with the given status code and message.
	NewCallError = core.NewCallError
)
