package service

import (
	"context"
	"errors"
	"fmt"

	"coder_management/internal/domain"
	"coder_management/internal/repository"
)

// TaskRepository is the persistence surface the task service needs. The
// Postgres repository and the in-memory store both satisfy it.
type TaskRepository interface {
	List(ctx context.Context, p repository.ListParams) ([]domain.Task, int, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	FindByContent(ctx context.Context, name, description string) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
	ListByAssignee(ctx context.Context, userID string) ([]domain.AssignedTask, error)
}

// UserRepository is the persistence surface for users.
type UserRepository interface {
	List(ctx context.Context, p repository.ListParams) ([]domain.User, int, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindEmployeeByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// EventPublisher broadcasts entity change events to feed subscribers.
type EventPublisher interface {
	Publish(event string, data any)
}

// TaskUpdate is the combined update body: each field is applied
// independently when present. A non-nil empty Assignee clears the
// assignment.
type TaskUpdate struct {
	Status   *domain.Status
	Assignee *string
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks      []domain.Task `json:"tasks"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

type TaskService struct {
	tasks  TaskRepository
	users  UserRepository
	events EventPublisher
}

// NewTaskService wires the task service. events may be nil.
func NewTaskService(tasks TaskRepository, users UserRepository, events EventPublisher) *TaskService {
	return &TaskService{tasks: tasks, users: users, events: events}
}

func (s *TaskService) publish(event string, t *domain.Task) {
	if s.events != nil {
		s.events.Publish(event, t)
	}
}

func taskNotFound(id, summary string) *domain.AppError {
	return domain.NewNotFoundError(
		fmt.Sprintf("Task With Id %s Not Found Or Task Was Deleted.", id), summary)
}

// List returns one page of tasks and the total page count, both computed
// against the same filter predicate.
func (s *TaskService) List(ctx context.Context, p repository.ListParams) (*TaskPage, error) {
	tasks, count, err := s.tasks.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return &TaskPage{
		Tasks:      tasks,
		Page:       p.Page,
		TotalPages: repository.TotalPages(count, p.Limit),
	}, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, taskNotFound(id, fmt.Sprintf("Get Task By Id %s Failed.", id))
	}
	return t, err
}

// Create stores a new pending task after normalizing name and description.
// A live task with the same normalized content is a conflict, checked
// before the insert and again by the storage uniqueness constraint.
func (s *TaskService) Create(ctx context.Context, name, description string) (*domain.Task, error) {
	name = domain.Capitalize(name)
	description = domain.Capitalize(description)

	conflict := domain.NewConflictError("This task is already existed.", "Create Task Failed.")

	_, err := s.tasks.FindByContent(ctx, name, description)
	if err == nil {
		return nil, conflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	t := &domain.Task{Name: name, Description: description, Status: domain.StatusPending}
	if err := s.tasks.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict
		}
		return nil, err
	}

	s.publish("task.created", t)
	return t, nil
}

// Update applies a status transition and/or an assignee change. Status is
// applied first; a rejected transition leaves the task untouched.
func (s *TaskService) Update(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error) {
	summary := fmt.Sprintf("Update Task With Id %s Failed.", id)

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, taskNotFound(id, summary)
		}
		return nil, err
	}

	if upd.Status != nil {
		if !t.CanTransition(*upd.Status) {
			return nil, domain.NewIllegalTransitionError(
				fmt.Sprintf("Current Status of Task With Id %s is [done]. This task only accepts status [archive] to update.", id),
				summary)
		}
		t.Status = *upd.Status
	}

	if upd.Assignee != nil {
		if *upd.Assignee == "" {
			t.Assignee = nil
		} else {
			u, err := s.users.GetByID(ctx, *upd.Assignee)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, domain.NewNotFoundError(
						fmt.Sprintf("Assignee With Id %s Not Found Or Assignee Was Deleted.", *upd.Assignee),
						summary)
				}
				return nil, err
			}
			t.Assignee = &u.ID
		}
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, taskNotFound(id, summary)
		}
		return nil, err
	}

	s.publish("task.updated", t)
	return t, nil
}

// Delete soft-deletes the task. Deleted tasks disappear from every read
// path but stay in storage.
func (s *TaskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	summary := fmt.Sprintf("Delete Task With Id %s Failed.", id)

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, taskNotFound(id, summary)
		}
		return nil, err
	}

	t.IsDeleted = true
	if err := s.tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, taskNotFound(id, summary)
		}
		return nil, err
	}

	s.publish("task.deleted", t)
	return t, nil
}
