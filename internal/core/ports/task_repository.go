package ports

import (
	"context"

	"github.com/taskcase/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every lookup that
// takes an ownerID filters jointly on (id, owner_id): a task that exists but
// belongs to someone else is reported as domain.ErrTaskNotFound, identical to
// a genuinely missing one.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// UpdateByIDAndOwner replaces title and description only and returns the
	// updated document.
	UpdateByIDAndOwner(ctx context.Context, id, ownerID, title, description string) (*domain.Task, error)
	// DeleteByIDAndOwner removes exactly one task or reports ErrTaskNotFound
	// when no document matched.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}
