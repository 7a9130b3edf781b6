package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) ListUserPlatformIDs(ctx context.Context, userID int64) ([]int64, error) {
	sb := sqlbuilder.Select("platform_id")
	sb.From("userplatforms")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("platform_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying user platforms: %w", err)
	}
	defer func() { _ = rows.Close() }()

	platformIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		platformIDs = append(platformIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating platforms: %w", err)
	}

	return platformIDs, nil
}

// ReplaceUserPlatforms swaps the user's platform set wholesale: cached
// platform lists elsewhere treat the set as an immutable snapshot, so
// partial in-place edits are never exposed.
func (r *Repository) ReplaceUserPlatforms(ctx context.Context, userID int64, platformIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM userplatforms WHERE user_id = ?", userID,
	); err != nil {
		return fmt.Errorf("clearing user platforms: %w", err)
	}

	if len(platformIDs) > 0 {
		ib := sqlbuilder.InsertInto("userplatforms")
		ib.Cols("user_id", "platform_id")
		for _, platformID := range platformIDs {
			ib.Values(userID, platformID)
		}

		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting user platforms: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
