/*
Package authmiddleware provides pluggable request-authentication middleware
for net/http servers.

The middleware wraps a handler, extracts credentials for a given scheme
(HTTP Basic, bearer token, or OAuth client credentials), hands them to a
caller-supplied validator, and either lets the handler run or rejects the
request with a classified error. Adapters for Gin, Echo, and gRPC live in
the framework and integrations directories.

# Quick Start

	import (
	    authmiddleware "github.com/gatehouse/go-auth-middleware"
	)

	func main() {
	    mw, err := authmiddleware.NewBasic(
	        func(ctx context.Context, r *http.Request, username, password string) (bool, error) {
	            return username == "foo" && password == "bar", nil
	        },
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    http.Handle("/api/", mw.Handler(apiHandler))
	    http.ListenAndServe(":8080", nil)
	}

# Schemes

Each constructor fixes the extraction strategy and realm for one scheme:

  - NewBasic: username/password from the Basic auth header, realm "basic".
  - NewClientCredentials: client_id/client_secret from the Basic header or
    request parameters, realm "basic".
  - NewToken: access token from the Authorization Bearer header,
    realm "Bearer".
  - New: the generic building block. It performs no extraction, accepts a
    realm override, and tolerates a missing validator until the first call.

A required credential field that is empty or absent always denies the request
before the validator runs; extraction never substitutes defaults.

# Error Classification

Failures surface as one of two conditions. A misconfigured decorator (no
validator wired up) produces a *core.CallError with status 403 and a fixed
developer-facing message. Missing credentials, validator errors, and falsy
verdicts produce a *core.AccessDeniedError carrying the realm.

	if err := mw.Check(r); err != nil {
	    var denied *core.AccessDeniedError
	    if errors.As(err, &denied) {
	        // normal failed login for denied.Realm
	    }
	}

Validators may return a *core.CallError themselves to signal precise HTTP
errors; those pass through unchanged instead of being normalized.

# Accessing Credentials

After a successful check the extracted credentials are available from the
request context:

	func apiHandler(w http.ResponseWriter, r *http.Request) {
	    creds, err := core.GetCredentials(r.Context())
	    if err != nil {
	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
	        return
	    }
	    fmt.Fprintf(w, "hello %s", creds.Username)
	}
*/
package authmiddleware
