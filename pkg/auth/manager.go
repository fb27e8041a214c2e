package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/domain"
)

var ErrAccessTokenExpired = errors.New("token has invalid claims: token is expired")

// TokenManager issues and parses the session tokens handed out after a
// successful Google sign-in.
type TokenManager interface {
	NewJWT(identity domain.Identity) (string, time.Duration, error)
	Parse(accessToken string) (domain.Identity, error)
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey     string
	accessTokenTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	return &Manager{
		signingKey:     cfg.SigningKey,
		accessTokenTTL: cfg.AccessTokenTTL,
	}, nil
}

func (m *Manager) NewJWT(identity domain.Identity) (string, time.Duration, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTokenTTL)),
			Subject:   identity.UID,
		},
	})

	accessToken, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return accessToken, m.accessTokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (domain.Identity, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return domain.Identity{}, err
	}

	if claims.Email == "" {
		return domain.Identity{}, errors.New("token carries no email claim")
	}

	return domain.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
	}, nil
}
