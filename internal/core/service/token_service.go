package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

// tokenTTL is the fixed lifetime of issued tokens. It is a process-wide
// policy, not a per-call parameter.
const tokenTTL = 30 * time.Minute

// TokenService issues and validates HS256-signed JWTs carrying the user
// email as subject. The signing secret is injected at construction from
// configuration and never read from ambient state afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: tokenTTL}
}

// Issue signs a token with sub, iat and exp claims.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate decodes and verifies the token and returns its subject. Every
// failure mode collapses into domain.ErrInvalidToken so callers cannot leak
// why a token was rejected.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

var _ ports.TokenService = (*TokenService)(nil)
