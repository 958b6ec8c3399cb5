package authmiddleware

import (
	"net/http"

	"github.com/gatehouse/go-auth-middleware/core"
)

// Scheme gathers credentials for one authentication style and names the
// realm reported on failures. The set of schemes is closed: generic, basic,
// client credentials, and bearer token. Extraction is read-only on the
// request and returns a *core.MissingCredentialError when a required field is
// empty or absent, so misconfigured requests never reach the validator.
type Scheme interface {
	Realm() string
	Extract(r *http.Request) (core.Credentials, error)
}

// genericScheme performs no extraction of its own. It is the building block
// for custom schemes: the validator receives the request and decides what to
// look at.
type genericScheme struct {
	realm string
}

func (s genericScheme) Realm() string { return s.realm }

func (genericScheme) Extract(*http.Request) (core.Credentials, error) {
	return core.Credentials{}, nil
}

type basicScheme struct{}

func (basicScheme) Realm() string { return "basic" }

func (basicScheme) Extract(r *http.Request) (core.Credentials, error) {
	username, password := BasicAuthExtractor(r)
	if username == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "username"}
	}
	if password == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "password"}
	}

	return core.Credentials{Username: username, Password: password}, nil
}

// clientScheme reuses basic's realm: client credentials travel over the same
// Basic challenge, only the extracted field names differ.
type clientScheme struct{}

func (clientScheme) Realm() string { return "basic" }

func (clientScheme) Extract(r *http.Request) (core.Credentials, error) {
	clientID, clientSecret := ClientCredentialsExtractor(r)
	if clientID == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "client_id"}
	}
	if clientSecret == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "client_secret"}
	}

	return core.Credentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}

type tokenScheme struct{}

func (tokenScheme) Realm() string { return "Bearer" }

func (tokenScheme) Extract(r *http.Request) (core.Credentials, error) {
	accessToken, err := BearerTokenExtractor(r)
	if err != nil {
		return core.Credentials{}, err
	}
	if accessToken == "" {
		return core.Credentials{}, &core.MissingCredentialError{Field: "access_token"}
	}

	return core.Credentials{AccessToken: accessToken}, nil
}
