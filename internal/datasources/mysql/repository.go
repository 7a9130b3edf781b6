package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
)

var _ datasources.EmbeddingRepository = (*Repository)(nil)
var _ datasources.PreferenceRepository = (*Repository)(nil)
var _ datasources.UserRepository = (*Repository)(nil)
var _ datasources.SessionRepository = (*Repository)(nil)
var _ datasources.PlatformRepository = (*Repository)(nil)
var _ datasources.WatchedRepository = (*Repository)(nil)

// parseTime is required so DATETIME columns scan into time.Time.
const dsnOptions = "?parseTime=true"

const maxConns = 10

// Repository provides MySQL-backed access to embeddings, preferences,
// users, sessions, watched items and platform associations.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Open connects to MySQL, verifies the connection, and returns a
// Repository backed by it.
func Open(ctx context.Context, uri string) (*Repository, error) {
	db, err := sql.Open("mysql", uri+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("opening MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return New(db), nil
}
