package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// SetPreferenceRequest is the request for the SetPreference command.
type SetPreferenceRequest struct {
	UserID    int64
	ItemID    int64
	MediaType domain.MediaType
	Liked     bool
}

// SetPreference upserts a user's preference with user-vector sync. It
// fetches the item's embedding first, then atomically writes the
// preference and adjusts the user's aggregate embedding.
type SetPreference struct {
	EmbeddingFetcher datasources.EmbeddingFetcher
	PreferenceSetter datasources.PreferenceSetter
}

// NewSetPreference creates a properly initialized SetPreference command.
func NewSetPreference(
	embeddingFetcher datasources.EmbeddingFetcher,
	preferenceSetter datasources.PreferenceSetter,
) *SetPreference {
	return &SetPreference{
		EmbeddingFetcher: embeddingFetcher,
		PreferenceSetter: preferenceSetter,
	}
}

// Execute sets the preference. A missing or unavailable item vector never
// blocks recording the preference; the vector sync is simply skipped.
func (c *SetPreference) Execute(ctx context.Context, req SetPreferenceRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	vector, err := c.EmbeddingFetcher.FetchEmbedding(ctx, req.ItemID, req.MediaType)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "failed to fetch item vector, proceeding without vector sync",
				"error", err, "item_id", req.ItemID)
		}
		vector = nil
	}

	pref := domain.Preference{
		UserID:    req.UserID,
		ItemID:    req.ItemID,
		MediaType: req.MediaType,
		Liked:     req.Liked,
	}
	if err := c.PreferenceSetter.SetPreference(ctx, pref, vector); err != nil {
		return Empty{}, fmt.Errorf("setting preference: %w", err)
	}

	logger.DebugContext(ctx, "set preference",
		"item_id", req.ItemID, "media_type", req.MediaType, "liked", req.Liked)

	return Empty{}, nil
}
