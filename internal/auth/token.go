package auth

import (
	"errors"
	"time"

	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when the exp claim is in the past.
var ErrTokenExpired = errors.New("Token expirado")

// DecodeIDToken reads the claims of an id_token without cryptographic
// verification; the gateway verifies the signature on every subsequent API
// call. The only local check is the exp claim against now.
func DecodeIDToken(raw string, now time.Time) (*entity.User, error) {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims parsing error")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenExpired
	}
	if exp.Before(now) {
		return nil, ErrTokenExpired
	}

	user := &entity.User{
		ID:      str(claims, "sub"),
		Email:   str(claims, "email"),
		Name:    str(claims, "name"),
		Picture: str(claims, "picture"),
	}
	if user.Name == "" {
		user.Name = user.Email
	}
	return user, nil
}

func str(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
