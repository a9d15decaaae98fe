package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"work-sync-admin/app/config"
	"work-sync-admin/app/models"
)

// SessionCookie is the durable session storage: one signed cookie
// carrying the backend bearer token and the admin email.
const SessionCookie = "worksync_session"

type SessionClaims struct {
	Token string `json:"token"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func sessionSecret() []byte {
	return []byte(config.Get().SessionSecret)
}

// GenerateSessionToken signs a session cookie value for the given
// backend token and admin email.
func GenerateSessionToken(token, email string) (string, error) {
	claims := SessionClaims{
		Token: token,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "work-sync-admin",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(sessionSecret())
}

// ParseSessionToken validates a session cookie value and returns the
// session it carries. Any parse or signature failure means "not
// authenticated", never a surfaced error.
func ParseSessionToken(value string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(value, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return models.Session{}, jwt.ErrTokenInvalidClaims
	}
	return models.Session{Token: claims.Token, Email: claims.Email}, nil
}
