package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// DeletePreferenceRequest is the request for the DeletePreference command.
type DeletePreferenceRequest struct {
	UserID    int64
	ItemID    int64
	MediaType domain.MediaType
}

// DeletePreference removes a user's preference, subtracting the item's
// vector from the user's aggregate embedding when the removed preference
// was a like.
type DeletePreference struct {
	EmbeddingFetcher  datasources.EmbeddingFetcher
	PreferenceRemover datasources.PreferenceRemover
}

// NewDeletePreference creates a properly initialized DeletePreference command.
func NewDeletePreference(
	embeddingFetcher datasources.EmbeddingFetcher,
	preferenceRemover datasources.PreferenceRemover,
) *DeletePreference {
	return &DeletePreference{
		EmbeddingFetcher:  embeddingFetcher,
		PreferenceRemover: preferenceRemover,
	}
}

// Execute removes the preference. Retracting a preference that was never
// recorded is a no-op, not an error.
func (c *DeletePreference) Execute(ctx context.Context, req DeletePreferenceRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	vector, err := c.EmbeddingFetcher.FetchEmbedding(ctx, req.ItemID, req.MediaType)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "failed to fetch item vector, proceeding without vector sync",
				"error", err, "item_id", req.ItemID)
		}
		vector = nil
	}

	if err := c.PreferenceRemover.RemovePreference(
		ctx, req.UserID, req.ItemID, req.MediaType, vector,
	); err != nil {
		return Empty{}, fmt.Errorf("removing preference: %w", err)
	}

	return Empty{}, nil
}
