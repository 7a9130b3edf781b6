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

// RecommendSimilarRequest is the request for the RecommendSimilar command.
type RecommendSimilarRequest struct {
	ItemID    int64
	MediaType domain.MediaType
	Limit     int
}

// RecommendSimilar returns the items nearest to a single query item.
// The query item itself is never part of the result.
type RecommendSimilar struct {
	EmbeddingFetcher datasources.EmbeddingFetcher
	NeighborSearcher datasources.NeighborSearcher
	Enricher         datasources.ItemEnricher
}

// NewRecommendSimilar creates a properly initialized RecommendSimilar command.
func NewRecommendSimilar(
	embeddingFetcher datasources.EmbeddingFetcher,
	neighborSearcher datasources.NeighborSearcher,
	enricher datasources.ItemEnricher,
) *RecommendSimilar {
	return &RecommendSimilar{
		EmbeddingFetcher: embeddingFetcher,
		NeighborSearcher: neighborSearcher,
		Enricher:         enricher,
	}
}

// Execute returns up to Limit candidates, closest first. A query item with
// no stored embedding yields domain.ErrItemNotIndexed; a failed metadata
// lookup degrades that candidate to an empty title rather than failing.
func (c *RecommendSimilar) Execute(
	ctx context.Context, req RecommendSimilarRequest,
) ([]domain.SimilarItem, error) {
	metrics.RecommendationRequests.WithLabelValues("item", string(req.MediaType)).Inc()

	query, err := c.EmbeddingFetcher.FetchEmbedding(ctx, req.ItemID, req.MediaType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("item %d: %w", req.ItemID, domain.ErrItemNotIndexed)
		}
		return nil, fmt.Errorf("fetching query embedding: %w", err)
	}

	neighbors, err := c.NeighborSearcher.SearchNeighbors(
		ctx, req.MediaType, query, []int64{req.ItemID}, req.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching neighbors: %w", err)
	}

	results := make([]domain.SimilarItem, len(neighbors))
	for i, n := range neighbors {
		results[i] = domain.SimilarItem{ItemID: n.ItemID, Distance: n.Distance}
	}

	enrichItems(ctx, c.Enricher, req.MediaType, results)

	return results, nil
}

// enrichItems attaches display titles to candidates in parallel. Each
// lookup carries its own timeout inside the enricher; failures leave the
// title blank and are only logged and counted.
func enrichItems(
	ctx context.Context,
	enricher datasources.ItemEnricher,
	mediaType domain.MediaType,
	items []domain.SimilarItem,
) {
	logger := domain.LoggerFromContext(ctx)

	var grp errgroup.Group
	for i := range items {
		grp.Go(func() error {
			title, err := enricher.DisplayTitle(ctx, items[i].ItemID, mediaType)
			if err != nil {
				metrics.EnrichmentFailures.Inc()
				logger.WarnContext(ctx, "metadata lookup failed, returning candidate without title",
					"error", err, "item_id", items[i].ItemID)
				return nil
			}
			items[i].Title = title
			return nil
		})
	}
	_ = grp.Wait()
}
