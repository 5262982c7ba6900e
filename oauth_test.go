package submit_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submit "github.com/dvidshub/submit.go"
)

func TestAuthorizationURL(t *testing.T) {
	client := submit.New(&submit.Config{
		AuthBaseURL:  "https://auth.test",
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURI:  "https://app.test/callback",
		Scopes:       []string{"read", "write"},
	})

	raw := client.AuthorizationURL("xyzzy")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "auth.test", parsed.Host)
	assert.Equal(t, "/auth/authorize", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "https://app.test/callback", q.Get("redirect_uri"))
	assert.Equal(t, "read write", q.Get("scope"))
	assert.Equal(t, "xyzzy", q.Get("state"))
	assert.Empty(t, q.Get("client_secret"))
}

func TestAuthorizationURLWithoutState(t *testing.T) {
	client := submit.New(&submit.Config{
		AuthBaseURL: "https://auth.test",
		ClientID:    "cid",
	})

	parsed, err := url.Parse(client.AuthorizationURL(""))
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("state"))
}

func TestNewState(t *testing.T) {
	a := submit.NewState()
	b := submit.NewState()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
