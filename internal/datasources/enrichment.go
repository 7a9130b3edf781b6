package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// ItemEnricher resolves human-readable display metadata for an item ID.
// Implementations must bound each lookup with a timeout; a failed or
// missing lookup degrades a single candidate, never the whole request.
type ItemEnricher interface {
	DisplayTitle(ctx context.Context, itemID int64, mediaType domain.MediaType) (string, error)
}

// NullItemEnricher is a null implementation of ItemEnricher for
// deployments that serve recommendations without display metadata.
type NullItemEnricher struct{}

var _ ItemEnricher = NullItemEnricher{}

func (NullItemEnricher) DisplayTitle(_ context.Context, _ int64, _ domain.MediaType) (string, error) {
	return "", nil
}

// TrendingLister returns the provider's current trending titles.
type TrendingLister interface {
	ListTrending(ctx context.Context, mediaType domain.MediaType, limit int) ([]domain.TrendingItem, error)
}

// NullTrendingLister is a null implementation of TrendingLister.
type NullTrendingLister struct{}

var _ TrendingLister = NullTrendingLister{}

func (NullTrendingLister) ListTrending(_ context.Context, _ domain.MediaType, _ int) ([]domain.TrendingItem, error) {
	return nil, nil
}
