package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic(t *testing.T) {
	validate := Basic("jane", "secret")

	testCases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "matching pair", username: "jane", password: "secret", want: true},
		{name: "wrong password", username: "jane", password: "guess", want: false},
		{name: "wrong username", username: "john", password: "secret", want: false},
		{name: "empty pair", username: "", password: "", want: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ok, err := validate(context.Background(), nil, testCase.username, testCase.password)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, ok)
		})
	}
}

func TestClient(t *testing.T) {
	validate := Client("client-1", "hunter2")

	ok, err := validate(context.Background(), nil, "client-1", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validate(context.Background(), nil, "client-1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToken(t *testing.T) {
	validate := Token("abc123")

	ok, err := validate(context.Background(), nil, "abc123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validate(context.Background(), nil, "abc124")
	require.NoError(t, err)
	assert.False(t, ok)

	// A candidate with a different length must still just be a mismatch.
	ok, err = validate(context.Background(), nil, "abc123abc123")
	require.NoError(t, err)
	assert.False(t, ok)
}
