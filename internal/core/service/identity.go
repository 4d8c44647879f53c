package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

// IdentityResolver maps a bearer token to the authenticated user: the token
// service extracts the subject email, then the user record is loaded. Token
// failures and unknown subjects are reported identically so a caller cannot
// tell which layer rejected the request.
type IdentityResolver struct {
	tokens ports.TokenService
	users  ports.UserRepository
	cache  ports.UserCache // optional, may be nil
	log    zerolog.Logger
}

func NewIdentityResolver(tokens ports.TokenService, users ports.UserRepository, cache ports.UserCache, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users, cache: cache, log: log}
}

func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	subject, err := r.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	if r.cache != nil {
		if user, err := r.cache.Get(ctx, subject); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := r.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if r.cache != nil {
		// User records are immutable in this scope, so caching cannot serve
		// stale data. Cache failures only cost the next lookup.
		if err := r.cache.Set(ctx, user); err != nil {
			r.log.Warn().Err(err).Msg("identity cache set failed")
		}
	}

	return user, nil
}

var _ ports.IdentityResolver = (*IdentityResolver)(nil)
