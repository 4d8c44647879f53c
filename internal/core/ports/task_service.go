package ports

import (
	"context"

	"github.com/taskcase/task-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput carries the mutable task fields. ID and owner are immutable.
type UpdateTaskInput struct {
	Title       string
	Description string
}

// TaskService defines the ownership-checked use-case operations on tasks.
// The resolved owner is the authorization context for every call.
type TaskService interface {
	Create(ctx context.Context, owner *domain.User, in CreateTaskInput) (*domain.Task, error)
	ListOwned(ctx context.Context, owner *domain.User) ([]*domain.Task, error)
	Get(ctx context.Context, owner *domain.User, id string) (*domain.Task, error)
	Update(ctx context.Context, owner *domain.User, id string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, owner *domain.User, id string) error
}
