package authgin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmiddleware "github.com/gatehouse/go-auth-middleware"
	"github.com/gatehouse/go-auth-middleware/core"
)

func newBasicMiddleware(t *testing.T) *authmiddleware.Middleware {
	t.Helper()
	mw, err := authmiddleware.NewBasic(
		func(_ context.Context, _ *http.Request, username, password string) (bool, error) {
			return username == "foo" && password == "bar", nil
		},
	)
	require.NoError(t, err)
	return mw
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/", func(c *gin.Context) {
		creds, err := GetCredentials(c, DefaultCredentialsKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": creds.Username})
	})
	return router
}

func TestGinMiddleware(t *testing.T) {
	t.Run("valid credentials reach the handler with credentials set", func(t *testing.T) {
		router := newRouter(Middleware(newBasicMiddleware(t)))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.SetBasicAuth("foo", "bar")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"username":"foo"}`, recorder.Body.String())
	})

	t.Run("invalid credentials abort the chain with a challenge", func(t *testing.T) {
		router := newRouter(Middleware(newBasicMiddleware(t)))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.SetBasicAuth("foo", "wrong")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, `Basic realm="basic"`, recorder.Header().Get("WWW-Authenticate"))
	})

	t.Run("custom error handler and context key", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(Middleware(newBasicMiddleware(t),
			WithContextKey("creds"),
			WithErrorHandler(func(c *gin.Context, err error) {
				c.JSON(StatusFor(err), gin.H{"message": err.Error()})
			}),
		))
		router.GET("/", func(c *gin.Context) {
			creds, err := GetCredentials(c, "creds")
			require.NoError(t, err)
			c.String(http.StatusOK, creds.Username)
		})

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "username is required")

		request = httptest.NewRequest(http.MethodGet, "/", nil)
		request.SetBasicAuth("foo", "bar")
		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "foo", recorder.Body.String())
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusFor(core.NewSetupError()))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(&core.AccessDeniedError{Realm: "basic", Message: "nope"}))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}
