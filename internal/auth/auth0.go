// Package auth drives the redirect-based login flow against the identity
// provider and owns the session lifecycle: Unauthenticated, Authenticating
// (browser away at the provider) and Authenticated.
package auth

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Auth0Config describes the tenant the console authenticates against.
type Auth0Config struct {
	Domain      string // e.g. https://tenant.us.auth0.com
	ClientID    string
	RedirectURI string
	Scopes      []string
}

// BuildAuthorizeURL constructs the authorization redirect. response_type is
// id_token (implicit flow) and prompt=login forces credential re-entry on
// every login. The nonce is fresh per call.
func BuildAuthorizeURL(cfg Auth0Config) string {
	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("redirect_uri", cfg.RedirectURI)
	q.Set("response_type", "id_token")
	q.Set("scope", strings.Join(cfg.Scopes, " "))
	q.Set("nonce", uuid.NewString())
	q.Set("prompt", "login")
	return cfg.Domain + "/authorize?" + q.Encode()
}

// BuildLogoutURL constructs the provider's logout endpoint with a return URL
// back to the console.
func BuildLogoutURL(cfg Auth0Config) string {
	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("returnTo", cfg.RedirectURI)
	return cfg.Domain + "/v2/logout?" + q.Encode()
}

// IDTokenFromFragment extracts the id_token parameter from a callback URL
// fragment (the part after '#', without the '#').
func IDTokenFromFragment(fragment string) string {
	params, err := url.ParseQuery(fragment)
	if err != nil {
		return ""
	}
	return params.Get("id_token")
}
