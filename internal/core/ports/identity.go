package ports

import (
	"context"

	"github.com/taskcase/task-api/internal/core/domain"
)

// IdentityResolver turns a bearer token into the authenticated user record.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// UserCache is an optional short-lived cache of resolved users, keyed by
// email. Safe here because user records are immutable once created.
type UserCache interface {
	Get(ctx context.Context, email string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
}
