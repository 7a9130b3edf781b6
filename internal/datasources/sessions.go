package datasources

import (
	"context"
	"time"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// SessionRepository combines all session store access.
type SessionRepository interface {
	SessionCreator
	SessionByTokenHashGetter
}

type SessionCreator interface {
	CreateSession(ctx context.Context, sessionID string, userID int64, tokenHash string, expiresAt time.Time) error
}

// SessionByTokenHashGetter returns domain.ErrNotFound for unknown hashes.
type SessionByTokenHashGetter interface {
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)
}
