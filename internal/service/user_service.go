package service

import (
	"context"
	"errors"
	"fmt"

	"coder_management/internal/domain"
	"coder_management/internal/repository"
)

// UserPage is one page of a user listing.
type UserPage struct {
	Users      []domain.User `json:"users"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// UserTasks is a user together with every live task assigned to them,
// with the assignee reference populated.
type UserTasks struct {
	Tasks []domain.AssignedTask `json:"tasks"`
	User  *domain.User          `json:"user"`
}

type UserService struct {
	users UserRepository
	tasks TaskRepository
}

func NewUserService(users UserRepository, tasks TaskRepository) *UserService {
	return &UserService{users: users, tasks: tasks}
}

func userNotFound(id, summary string) *domain.AppError {
	return domain.NewNotFoundError(
		fmt.Sprintf("User With Id %s Not Found Or User Was Deleted.", id), summary)
}

func (s *UserService) List(ctx context.Context, p repository.ListParams) (*UserPage, error) {
	users, count, err := s.users.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return &UserPage{
		Users:      users,
		Page:       p.Page,
		TotalPages: repository.TotalPages(count, p.Limit),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, userNotFound(id, fmt.Sprintf("Get User By Id %s Failed.", id))
	}
	return u, err
}

// Create stores a new employee after normalizing the name. The name must
// be unique among live employees, case-insensitive; the check runs before
// the insert and the storage uniqueness constraint closes the race.
func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	name = domain.Capitalize(name)

	conflict := domain.NewConflictError(
		"Name value is already exist. You should choose another name.", "Create User Failed.")

	_, err := s.users.FindEmployeeByName(ctx, name)
	if err == nil {
		return nil, conflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u := &domain.User{Name: name, Role: domain.RoleEmployee}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict
		}
		return nil, err
	}
	return u, nil
}

// TasksByUser returns the user and all live tasks assigned to them.
func (s *UserService) TasksByUser(ctx context.Context, id string) (*UserTasks, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, userNotFound(id, fmt.Sprintf("Get All Tasks By User Id %s Failed.", id))
		}
		return nil, err
	}

	tasks, err := s.tasks.ListByAssignee(ctx, id)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.AssignedTask{}
	}
	return &UserTasks{Tasks: tasks, User: u}, nil
}
