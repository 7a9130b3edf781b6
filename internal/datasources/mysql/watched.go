package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func (r *Repository) AddWatchedItem(
	ctx context.Context, userID, itemID int64, mediaType domain.MediaType,
) error {
	// Re-watching keeps the original timestamp.
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO watched (user_id, item_id, media_type, watched_at)
		 VALUES (?, ?, ?, NOW())
		 ON DUPLICATE KEY UPDATE watched_at = watched_at`,
		userID, itemID, string(mediaType),
	); err != nil {
		return fmt.Errorf("inserting watched item: %w", err)
	}
	return nil
}

func (r *Repository) ListWatchedItems(
	ctx context.Context, userID int64, mediaType domain.MediaType,
) ([]domain.WatchedItem, error) {
	sb := sqlbuilder.Select("item_id", "media_type", "watched_at")
	sb.From("watched")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("media_type", string(mediaType)),
	)
	sb.OrderBy("watched_at", "item_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying watched items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.WatchedItem{}
	for rows.Next() {
		var item domain.WatchedItem
		var mt string
		if err := rows.Scan(&item.ItemID, &mt, &item.WatchedAt); err != nil {
			return nil, fmt.Errorf("scanning watched item: %w", err)
		}
		item.MediaType = domain.MediaType(mt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watched items: %w", err)
	}

	return items, nil
}
