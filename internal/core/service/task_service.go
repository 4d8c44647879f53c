package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

// TaskService implements ownership-checked task CRUD. The resolved owner is
// the implicit authorization context: every repository call carries the
// owner id, so a task belonging to someone else behaves exactly like a
// missing one.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) Create(ctx context.Context, owner *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     owner.ID,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", owner.ID).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.Info().Str("task_id", created.ID).Str("owner_id", owner.ID).Msg("task created")
	return created, nil
}

// ListOwned returns all tasks owned by the caller, fully materialized, in
// storage-native order.
func (s *TaskService) ListOwned(ctx context.Context, owner *domain.User) ([]*domain.Task, error) {
	tasks, err := s.repo.FindByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, owner *domain.User, id string) (*domain.Task, error) {
	if !domain.ValidTaskID(id) {
		return nil, domain.ErrInvalidTaskID
	}
	return s.repo.FindByIDAndOwner(ctx, id, owner.ID)
}

func (s *TaskService) Update(ctx context.Context, owner *domain.User, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	if !domain.ValidTaskID(id) {
		return nil, domain.ErrInvalidTaskID
	}

	updated, err := s.repo.UpdateByIDAndOwner(ctx, id, owner.ID, in.Title, in.Description)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", id).Str("owner_id", owner.ID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, owner *domain.User, id string) error {
	if !domain.ValidTaskID(id) {
		return domain.ErrInvalidTaskID
	}

	if err := s.repo.DeleteByIDAndOwner(ctx, id, owner.ID); err != nil {
		return err
	}

	s.log.Info().Str("task_id", id).Str("owner_id", owner.ID).Msg("task deleted")
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
