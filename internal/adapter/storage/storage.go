// Package storage provides the durable session storage behind the auth state:
// the raw id_token under auth_token and the serialized user under auth_user.
// Writes are single-key and idempotent, so no transaction discipline is needed.
package storage

import (
	"context"

	"github.com/Brayan008/cuack-stores/internal/entity"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// SessionStore persists the staff session across restarts.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	SaveUser(ctx context.Context, user entity.User) error
	// Load returns the persisted token and user. ok is true only when both
	// are present.
	Load(ctx context.Context) (token string, user *entity.User, ok bool, err error)
	// Clear removes both keys. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
