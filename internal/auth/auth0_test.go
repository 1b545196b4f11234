package auth

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = Auth0Config{
	Domain:      "https://tenant.us.auth0.com",
	ClientID:    "client-123",
	RedirectURI: "http://localhost:3000",
	Scopes:      []string{"openid", "profile", "email"},
}

func TestBuildAuthorizeURL(t *testing.T) {
	raw := BuildAuthorizeURL(testCfg)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "https://tenant.us.auth0.com/authorize?"))

	q := u.Query()
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "http://localhost:3000", q.Get("redirect_uri"))
	assert.Equal(t, "id_token", q.Get("response_type"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "login", q.Get("prompt"))
	assert.NotEmpty(t, q.Get("nonce"))
}

func TestBuildAuthorizeURLFreshNonce(t *testing.T) {
	first, err := url.Parse(BuildAuthorizeURL(testCfg))
	require.NoError(t, err)
	second, err := url.Parse(BuildAuthorizeURL(testCfg))
	require.NoError(t, err)

	assert.NotEqual(t, first.Query().Get("nonce"), second.Query().Get("nonce"))
}

func TestBuildLogoutURL(t *testing.T) {
	raw := BuildLogoutURL(testCfg)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/v2/logout", u.Path)
	assert.Equal(t, "client-123", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:3000", u.Query().Get("returnTo"))
}

func TestIDTokenFromFragment(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", IDTokenFromFragment("id_token=abc.def.ghi&state=xyz"))
	assert.Empty(t, IDTokenFromFragment("state=xyz"))
	assert.Empty(t, IDTokenFromFragment(""))
	assert.Empty(t, IDTokenFromFragment("%zz"))
}
