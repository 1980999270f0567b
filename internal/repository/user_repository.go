package repository

import (
	"context"
	"errors"

	"jobghar/internal/database"
	"jobghar/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, COALESCE(access_token, ''), role, age, is_profile_complete, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, age)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Age,
	)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrDuplicateEmail
		}
		return user.User{}, err
	}
	return created, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateAccessToken(ctx context.Context, id int64, token string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET access_token = $2, updated_at = now() WHERE id = $1`,
		id, token,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AccessToken,
		&u.Role, &u.Age, &u.IsProfileComplete, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
