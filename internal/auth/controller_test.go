package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Brayan008/cuack-stores/internal/adapter/storage"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestController(t *testing.T) (*Controller, *store.Store, *storage.MemorySessionStore) {
	t.Helper()
	sessions := storage.NewMemorySessionStore()
	st := store.New(sessions)
	ctrl := NewController(testCfg, st, sessions)
	return ctrl, st, sessions
}

func TestHandleCallbackValidToken(t *testing.T) {
	ctrl, st, sessions := newTestController(t)
	now := time.Now()

	raw := mintIDToken(t, jwt.MapClaims{
		"sub":     "auth0|user-1",
		"email":   "ana@cuack.store",
		"name":    "Ana",
		"picture": "https://img.example/ana.png",
		"exp":     now.Add(time.Hour).Unix(),
	})

	sess, err := ctrl.HandleCallback(context.Background(), "id_token="+raw, now)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, raw, sess.Token)
	assert.Equal(t, "auth0|user-1", sess.User.ID)
	assert.Equal(t, "Ana", sess.User.Name)

	// persisted to durable storage
	token, user, ok, err := sessions.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, token)
	assert.Equal(t, "ana@cuack.store", user.Email)

	assert.True(t, st.Session().IsAuthenticated)
}

func TestHandleCallbackExpiredTokenNeverAuthenticates(t *testing.T) {
	ctrl, st, sessions := newTestController(t)
	now := time.Now()

	raw := mintIDToken(t, jwt.MapClaims{
		"sub":   "auth0|user-1",
		"email": "ana@cuack.store",
		"exp":   now.Add(-time.Minute).Unix(),
	})

	_, err := ctrl.HandleCallback(context.Background(), "id_token="+raw, now)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// straight to logged-out, not half-authenticated
	assert.False(t, st.Session().IsAuthenticated)
	assert.Empty(t, st.Session().Token)
	_, _, ok, _ := sessions.Load(context.Background())
	assert.False(t, ok)
}

func TestHandleCallbackMalformedTokenForcesLogout(t *testing.T) {
	ctrl, st, _ := newTestController(t)

	_, err := ctrl.HandleCallback(context.Background(), "id_token=not-a-jwt", time.Now())
	assert.Error(t, err)
	assert.False(t, st.Session().IsAuthenticated)
}

func TestHandleCallbackMissingToken(t *testing.T) {
	ctrl, st, _ := newTestController(t)

	_, err := ctrl.HandleCallback(context.Background(), "state=only", time.Now())
	assert.Error(t, err)
	assert.False(t, st.Session().IsAuthenticated)
}

func TestDecodeIDTokenNameFallsBackToEmail(t *testing.T) {
	raw := mintIDToken(t, jwt.MapClaims{
		"sub":   "auth0|user-2",
		"email": "sin.nombre@cuack.store",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user, err := DecodeIDToken(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "sin.nombre@cuack.store", user.Name)
}

func TestDecodeIDTokenNoExpClaim(t *testing.T) {
	raw := mintIDToken(t, jwt.MapClaims{"sub": "auth0|user-3"})

	_, err := DecodeIDToken(raw, time.Now())
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRehydrate(t *testing.T) {
	ctrl, st, sessions := newTestController(t)
	ctx := context.Background()

	// nothing stored
	assert.False(t, ctrl.Rehydrate(ctx))

	// token only is not enough
	require.NoError(t, sessions.SaveToken(ctx, "tok"))
	assert.False(t, ctrl.Rehydrate(ctx))

	// token + user restores the session; expiry is deliberately not re-checked
	require.NoError(t, sessions.SaveUser(ctx, entity.User{ID: "u1", Email: "ana@cuack.store"}))
	assert.True(t, ctrl.Rehydrate(ctx))
	sess := st.Session()
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "u1", sess.User.ID)
}

func TestLogoutClearsEverything(t *testing.T) {
	ctrl, st, sessions := newTestController(t)
	ctx := context.Background()

	raw := mintIDToken(t, jwt.MapClaims{
		"sub": "auth0|user-1", "email": "ana@cuack.store",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := ctrl.HandleCallback(ctx, "id_token="+raw, time.Now())
	require.NoError(t, err)

	ctrl.Logout(ctx)
	assert.False(t, st.Session().IsAuthenticated)
	_, _, ok, _ := sessions.Load(ctx)
	assert.False(t, ok)
}
