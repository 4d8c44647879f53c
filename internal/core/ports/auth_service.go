package ports

import (
	"context"

	"github.com/taskcase/task-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed bearer token. Unknown email and wrong password
	// are both domain.ErrInvalidCredentials — callers must not distinguish.
	Login(ctx context.Context, email, password string) (string, error)
}
