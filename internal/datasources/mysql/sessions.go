package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func (r *Repository) CreateSession(
	ctx context.Context, sessionID string, userID int64, tokenHash string, expiresAt time.Time,
) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, user_id, token_hash, created_at, expires_at)
		 VALUES (?, ?, ?, NOW(), ?)`,
		sessionID, userID, tokenHash, expiresAt,
	); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *Repository) GetSessionByTokenHash(
	ctx context.Context, tokenHash string,
) (domain.Session, error) {
	var s domain.Session
	var revokedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT session_id, user_id, token_hash, created_at, expires_at, revoked_at
		 FROM sessions WHERE token_hash = ?`,
		tokenHash,
	).Scan(&s.ID, &s.UserID, &s.TokenHash, &s.CreatedAt, &s.ExpiresAt, &revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetching session: %w", err)
	}

	if revokedAt.Valid {
		s.RevokedAt = &revokedAt.Time
	}
	return s, nil
}
