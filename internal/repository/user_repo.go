package repository

import (
	"context"
	"errors"

	"coder_management/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, role, is_deleted, created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Role, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns one page of live users plus the total number of rows
// matching the same predicate.
func (r *UserRepository) List(ctx context.Context, p ListParams) ([]domain.User, int, error) {
	countSQL, pageSQL, args := buildUserListSQL(p)

	var count int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, pageSQL, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		res = append(res, u)
	}
	return res, count, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND is_deleted = false`, id))
}

// FindEmployeeByName looks up a live employee by name, case-insensitive,
// for the name-uniqueness check at creation.
func (r *UserRepository) FindEmployeeByName(ctx context.Context, name string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE lower(name) = lower($1) AND role = 'employee' AND is_deleted = false`, name))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, role)
		 VALUES ($1, $2)
		 RETURNING id, is_deleted, created_at, updated_at`,
		u.Name, u.Role,
	).Scan(&u.ID, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
