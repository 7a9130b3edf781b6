package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
	"github.com/hcridlig/moovie-app-sub000/internal/metrics"
)

// RecommendForUserRequest is the request for the RecommendForUser command.
type RecommendForUserRequest struct {
	UserID    int64
	MediaType domain.MediaType

	// PerSourceLimit caps the neighbours contributed by each liked item.
	PerSourceLimit int

	// TotalLimit truncates the merged list when positive. Zero means
	// unbounded: every generated row is returned.
	TotalLimit int
}

// RecommendForUser builds personalized recommendations from a user's liked
// items: one nearest-neighbour query per liked item, run concurrently, then
// merged in liked order. Candidates already in the liked set are excluded.
// A candidate found via several liked items appears once per source item;
// rows are not deduplicated across sources.
type RecommendForUser struct {
	LikedLister      datasources.LikedItemIDsLister
	EmbeddingFetcher datasources.EmbeddingFetcher
	NeighborSearcher datasources.NeighborSearcher
	Enricher         datasources.ItemEnricher
}

// NewRecommendForUser creates a properly initialized RecommendForUser command.
func NewRecommendForUser(
	likedLister datasources.LikedItemIDsLister,
	embeddingFetcher datasources.EmbeddingFetcher,
	neighborSearcher datasources.NeighborSearcher,
	enricher datasources.ItemEnricher,
) *RecommendForUser {
	return &RecommendForUser{
		LikedLister:      likedLister,
		EmbeddingFetcher: embeddingFetcher,
		NeighborSearcher: neighborSearcher,
		Enricher:         enricher,
	}
}

// Execute returns the merged recommendation rows. A user with no likes gets
// an empty result, not an error. Liked items without a stored embedding are
// skipped; storage failures abort the whole request.
func (c *RecommendForUser) Execute(
	ctx context.Context, req RecommendForUserRequest,
) ([]domain.Recommendation, error) {
	metrics.RecommendationRequests.WithLabelValues("user", string(req.MediaType)).Inc()

	likedIDs, err := c.LikedLister.ListLikedItemIDs(ctx, req.UserID, req.MediaType)
	if err != nil {
		return nil, fmt.Errorf("listing liked items: %w", err)
	}
	if len(likedIDs) == 0 {
		return nil, nil
	}

	// Each per-source query is independent; fan out and join before merging.
	// perSource is indexed by liked position so the merge order is the
	// stable insertion order of the preferences.
	perSource := make([][]domain.NeighborCandidate, len(likedIDs))
	grp, grpCtx := errgroup.WithContext(ctx)
	for i, sourceID := range likedIDs {
		grp.Go(func() error {
			candidates, err := c.neighborsForSource(grpCtx, sourceID, likedIDs, req)
			if err != nil {
				return err
			}
			perSource[i] = candidates
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var rows []domain.Recommendation
	for i, sourceID := range likedIDs {
		for _, cand := range perSource[i] {
			rows = append(rows, domain.Recommendation{
				SourceItemID: sourceID,
				ItemID:       cand.ItemID,
				MediaType:    req.MediaType,
				Distance:     cand.Distance,
			})
		}
	}

	if req.TotalLimit > 0 && len(rows) > req.TotalLimit {
		rows = rows[:req.TotalLimit]
	}

	c.enrichRows(ctx, req.MediaType, rows)

	return rows, nil
}

// neighborsForSource runs one nearest-neighbour query for a liked item.
// The whole liked set is excluded, which also covers the source item
// itself. A missing embedding skips the source silently.
func (c *RecommendForUser) neighborsForSource(
	ctx context.Context,
	sourceID int64,
	likedIDs []int64,
	req RecommendForUserRequest,
) ([]domain.NeighborCandidate, error) {
	vector, err := c.EmbeddingFetcher.FetchEmbedding(ctx, sourceID, req.MediaType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.SkippedSourceItems.Inc()
			logger := domain.LoggerFromContext(ctx)
			logger.DebugContext(ctx, "liked item has no embedding, skipping",
				"item_id", sourceID)
			return nil, nil
		}
		return nil, fmt.Errorf("fetching embedding for liked item %d: %w", sourceID, err)
	}

	candidates, err := c.NeighborSearcher.SearchNeighbors(
		ctx, req.MediaType, vector, likedIDs, req.PerSourceLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching neighbors for liked item %d: %w", sourceID, err)
	}
	return candidates, nil
}

func (c *RecommendForUser) enrichRows(
	ctx context.Context, mediaType domain.MediaType, rows []domain.Recommendation,
) {
	logger := domain.LoggerFromContext(ctx)

	var grp errgroup.Group
	for i := range rows {
		grp.Go(func() error {
			title, err := c.Enricher.DisplayTitle(ctx, rows[i].ItemID, mediaType)
			if err != nil {
				metrics.EnrichmentFailures.Inc()
				logger.WarnContext(ctx, "metadata lookup failed, returning candidate without title",
					"error", err, "item_id", rows[i].ItemID)
				return nil
			}
			rows[i].Title = title
			return nil
		})
	}
	_ = grp.Wait()
}
