package auth

import (
	"context"
	"time"

	"github.com/Brayan008/cuack-stores/internal/adapter/storage"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/Brayan008/cuack-stores/internal/store"
)

// Controller ties the login flow to the auth slice and durable storage.
type Controller struct {
	cfg      Auth0Config
	store    *store.Store
	sessions storage.SessionStore
}

func NewController(cfg Auth0Config, st *store.Store, sessions storage.SessionStore) *Controller {
	return &Controller{cfg: cfg, store: st, sessions: sessions}
}

// AuthorizeURL starts a login attempt.
func (c *Controller) AuthorizeURL() string {
	return BuildAuthorizeURL(c.cfg)
}

// LogoutURL is where the browser goes after Logout.
func (c *Controller) LogoutURL() string {
	return BuildLogoutURL(c.cfg)
}

// HandleCallback completes the Authenticating → Authenticated transition from
// a callback URL fragment. On decode failure or an expired token it forces a
// full logout rather than leaving a half-authenticated state.
func (c *Controller) HandleCallback(ctx context.Context, fragment string, now time.Time) (*entity.Session, error) {
	idToken := IDTokenFromFragment(fragment)
	if idToken == "" {
		return nil, ErrTokenExpired
	}

	user, err := DecodeIDToken(idToken, now)
	if err != nil {
		logging.FromCtx(ctx).Error("auth callback rejected", "error", err.Error())
		c.Logout(ctx)
		return nil, err
	}

	c.store.SetUser(ctx, *user)
	c.store.SetToken(ctx, idToken)

	sess := c.store.Session()
	return &sess, nil
}

// Rehydrate restores the session from durable storage at startup. Both a
// token and a user record must be present; the token's expiry is not
// re-checked here, so a stale session surfaces only via the next 401.
func (c *Controller) Rehydrate(ctx context.Context) bool {
	token, user, ok, err := c.sessions.Load(ctx)
	if err != nil {
		logging.FromCtx(ctx).Error("session rehydration failed", "error", err.Error())
		return false
	}
	if !ok || user == nil {
		return false
	}
	c.store.RestoreSession(*user, token)
	return true
}

// Logout clears the in-memory session and durable storage.
func (c *Controller) Logout(ctx context.Context) {
	c.store.Logout(ctx)
}
