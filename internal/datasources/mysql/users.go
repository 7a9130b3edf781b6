package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

const userColumns = "user_id, username, email, password_hash, created_at, last_login"

func (r *Repository) CreateUser(
	ctx context.Context, username, email, passwordHash string,
) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at, user_vector_count)
		 VALUES (?, ?, ?, NOW(), 0)`,
		username, email, passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted user ID: %w", err)
	}
	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE user_id = ?", userID)
}

func (r *Repository) GetUserByAuth0Subject(ctx context.Context, subject string) (domain.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE auth0_subject = ?", subject)
}

func (r *Repository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var u domain.User
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}

	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return u, nil
}

func (r *Repository) UpdateUserProfile(
	ctx context.Context, userID int64, username, email string,
) (domain.User, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET username = ?, email = ? WHERE user_id = ?",
		username, email, userID,
	); err != nil {
		return domain.User{}, fmt.Errorf("updating user profile: %w", err)
	}

	return r.GetUserByID(ctx, userID)
}

func (r *Repository) UpdateUserLastLogin(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET last_login = NOW() WHERE user_id = ?", userID,
	); err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}
