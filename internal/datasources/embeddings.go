package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// ItemEmbedding is one (item, vector) row from the embedding store.
type ItemEmbedding struct {
	ItemID int64
	Vector []float32
}

// EmbeddingRepository combines all embedding store access.
type EmbeddingRepository interface {
	EmbeddingFetcher
	EmbeddingScanner
}

// EmbeddingFetcher looks up a single item's vector.
// Returns domain.ErrNotFound when the item has no stored embedding.
type EmbeddingFetcher interface {
	FetchEmbedding(ctx context.Context, itemID int64, mediaType domain.MediaType) ([]float32, error)
}

// EmbeddingScanner reads every embedding of a media type. The embedding
// store is read-only from the recommender's perspective; rows are replaced
// wholesale by the offline ingestion job.
type EmbeddingScanner interface {
	ScanEmbeddings(ctx context.Context, mediaType domain.MediaType) ([]ItemEmbedding, error)
}
