package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
)

const userColumns = "id, name, email, password, email_verified_at, created_at, updated_at"

// GetUserByID - Lấy user theo ID
func (r *implRepository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1
	`, userColumns)

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetUserByEmail - Lấy user theo email
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1
	`, userColumns)

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *implRepository) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var emailVerifiedAt sql.NullTime

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&emailVerifiedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("scanUser: %w", err)
	}

	if emailVerifiedAt.Valid {
		u.EmailVerifiedAt = &emailVerifiedAt.Time
	}

	return u, nil
}
