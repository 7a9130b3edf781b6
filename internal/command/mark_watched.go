package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// MarkWatchedRequest is the request for the MarkWatched command.
type MarkWatchedRequest struct {
	UserID    int64
	ItemID    int64
	MediaType domain.MediaType
}

// MarkWatched records that a user has seen an item. The item must exist
// in the catalog; unknown items return domain.ErrNotFound.
type MarkWatched struct {
	EmbeddingFetcher datasources.EmbeddingFetcher
	WatchedAdder     datasources.WatchedItemAdder
}

// NewMarkWatched creates a properly initialized MarkWatched command.
func NewMarkWatched(
	embeddingFetcher datasources.EmbeddingFetcher,
	watchedAdder datasources.WatchedItemAdder,
) *MarkWatched {
	return &MarkWatched{
		EmbeddingFetcher: embeddingFetcher,
		WatchedAdder:     watchedAdder,
	}
}

// Execute records the watched item after confirming it is in the catalog.
func (c *MarkWatched) Execute(ctx context.Context, req MarkWatchedRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.EmbeddingFetcher.FetchEmbedding(ctx, req.ItemID, req.MediaType); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("checking item exists: %w", err)
	}

	if err := c.WatchedAdder.AddWatchedItem(ctx, req.UserID, req.ItemID, req.MediaType); err != nil {
		return Empty{}, fmt.Errorf("adding watched item: %w", err)
	}

	logger.DebugContext(ctx, "marked item watched",
		"item_id", req.ItemID, "media_type", req.MediaType)

	return Empty{}, nil
}
