package service

import (
	"context"
	"errors"
	"log/slog"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TaskStore is the persistence the task service depends on.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
	ListByStatus(ctx context.Context, filter repository.StatusFilter) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Save(ctx context.Context, task *model.Task) error
}

// TaskService wraps task-related business logic.
type TaskService struct {
	store  TaskStore
	policy *TaskPolicy
	log    *slog.Logger
}

func NewTaskService(store TaskStore, policy *TaskPolicy, log *slog.Logger) *TaskService {
	if policy == nil {
		policy = NewTaskPolicy(nil)
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{store: store, policy: policy, log: log}
}

// ListAll returns every task, or ErrEmpty when there are none.
func (s *TaskService) ListAll(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, unhandled(err)
	}
	return nonEmpty(tasks)
}

// ListCompleted returns tasks whose status is exactly the completed label.
func (s *TaskService) ListCompleted(ctx context.Context) ([]model.Task, error) {
	return s.listByStatus(ctx, repository.StatusFilter{Label: model.StatusCompleted})
}

// ListNotCompleted returns tasks whose status is anything but the completed label.
func (s *TaskService) ListNotCompleted(ctx context.Context) ([]model.Task, error) {
	return s.listByStatus(ctx, repository.StatusFilter{Label: model.StatusCompleted, Negate: true})
}

func (s *TaskService) listByStatus(ctx context.Context, filter repository.StatusFilter) ([]model.Task, error) {
	tasks, err := s.store.ListByStatus(ctx, filter)
	if err != nil {
		return nil, unhandled(err)
	}
	return nonEmpty(tasks)
}

// Create applies the creation policy and persists the result.
// Nothing is written when validation fails.
func (s *TaskService) Create(ctx context.Context, candidate model.Task) (*model.Task, error) {
	task, err := s.policy.PrepareForCreation(candidate)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &task); err != nil {
		return nil, unhandled(err)
	}
	s.log.InfoContext(ctx, "task created", "task_id", task.ID)
	return &task, nil
}

// Update overwrites title, description and status of the task with id.
func (s *TaskService) Update(ctx context.Context, id string, incoming model.Task) error {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return unhandled(err)
	}

	s.policy.ApplyUpdate(task, incoming)

	if err := s.store.Save(ctx, task); err != nil {
		return unhandled(err)
	}
	s.log.InfoContext(ctx, "task updated", "task_id", task.ID, "status", task.Status)
	return nil
}

func nonEmpty[T any](items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return items, nil
}
