package authmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuthExtractor(t *testing.T) {
	t.Run("returns the pair from a well-formed header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.SetBasicAuth("foo", "bar")

		username, password := BasicAuthExtractor(request)
		assert.Equal(t, "foo", username)
		assert.Equal(t, "bar", password)
	})

	t.Run("returns empty values when the header is absent", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		username, password := BasicAuthExtractor(request)
		assert.Empty(t, username)
		assert.Empty(t, password)
	})

	t.Run("returns empty values for a non-Basic header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer abc123")

		username, password := BasicAuthExtractor(request)
		assert.Empty(t, username)
		assert.Empty(t, password)
	})
}

func TestBearerTokenExtractor(t *testing.T) {
	testCases := []struct {
		name       string
		authHeader string
		wantToken  string
		wantError  error
	}{
		{
			name:       "well-formed header",
			authHeader: "Bearer abc123",
			wantToken:  "abc123",
		},
		{
			name:       "scheme matching is case-insensitive",
			authHeader: "bearer abc123",
			wantToken:  "abc123",
		},
		{
			name: "absent header is not an error",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic Zm9vOmJhcg==",
			wantError:  ErrMalformedAuthHeader,
		},
		{
			name:       "too many fields",
			authHeader: "Bearer abc 123",
			wantError:  ErrMalformedAuthHeader,
		},
		{
			name:       "missing token part",
			authHeader: "Bearer",
			wantError:  ErrMalformedAuthHeader,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.authHeader != "" {
				request.Header.Set("Authorization", testCase.authHeader)
			}

			token, err := BearerTokenExtractor(request)
			if testCase.wantError != nil {
				require.ErrorIs(t, err, testCase.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantToken, token)
		})
	}
}

func TestClientCredentialsExtractor(t *testing.T) {
	t.Run("prefers the basic auth header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/?client_id=query&client_secret=query", nil)
		request.SetBasicAuth("header-id", "header-secret")

		clientID, clientSecret := ClientCredentialsExtractor(request)
		assert.Equal(t, "header-id", clientID)
		assert.Equal(t, "header-secret", clientSecret)
	})

	t.Run("falls back to query parameters", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/?client_id=my-client&client_secret=my-secret", nil)

		clientID, clientSecret := ClientCredentialsExtractor(request)
		assert.Equal(t, "my-client", clientID)
		assert.Equal(t, "my-secret", clientSecret)
	})

	t.Run("returns empty values when nothing is present", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		clientID, clientSecret := ClientCredentialsExtractor(request)
		assert.Empty(t, clientID)
		assert.Empty(t, clientSecret)
	})
}
