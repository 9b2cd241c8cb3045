package repository

import (
	"context"
	"errors"

	"coder_management/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no live (non-deleted) row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert hits a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const taskColumns = `id, name, description, status, assignee, is_deleted, created_at, updated_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.Assignee,
		&t.IsDeleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns one page of live tasks plus the total number of rows
// matching the same predicate.
func (r *TaskRepository) List(ctx context.Context, p ListParams) ([]domain.Task, int, error) {
	countSQL, pageSQL, args := buildTaskListSQL(p)

	var count int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, pageSQL, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var res []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.Assignee,
			&t.IsDeleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		res = append(res, t)
	}
	return res, count, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND is_deleted = false`, id))
}

// FindByContent looks up a live task by its normalized name+description
// pair, for the content-uniqueness check at creation.
func (r *TaskRepository) FindByContent(ctx context.Context, name, description string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE name = $1 AND description = $2 AND is_deleted = false`, name, description))
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (name, description, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_deleted, created_at, updated_at`,
		t.Name, t.Description, t.Status,
	).Scan(&t.ID, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Update persists status, assignee and the soft-delete flag, bumping
// updated_at. The row must still be live.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET status = $1, assignee = $2, is_deleted = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at`,
		t.Status, t.Assignee, t.IsDeleted, t.ID,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ListByAssignee returns all live tasks assigned to the user, with the
// assignee reference populated from the users table.
func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]domain.AssignedTask, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.name, t.description, t.status, t.is_deleted, t.created_at, t.updated_at,
		        u.id, u.name, u.role, u.is_deleted, u.created_at, u.updated_at
		 FROM tasks t
		 JOIN users u ON u.id = t.assignee
		 WHERE t.assignee = $1 AND t.is_deleted = false
		 ORDER BY t.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.AssignedTask
	for rows.Next() {
		var at domain.AssignedTask
		var u domain.User
		if err := rows.Scan(&at.ID, &at.Name, &at.Description, &at.Status,
			&at.IsDeleted, &at.CreatedAt, &at.UpdatedAt,
			&u.ID, &u.Name, &u.Role, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		at.Task.Assignee = &u.ID
		at.Assignee = &u
		res = append(res, at)
	}
	return res, rows.Err()
}
