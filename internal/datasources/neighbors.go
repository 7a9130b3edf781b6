package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// NeighborSearcher returns the k stored items nearest to a query vector,
// ascending by distance with ties broken by ascending item ID. Items in
// exclude never appear in the result. Fewer than k candidates is not an
// error; the searcher returns what exists.
type NeighborSearcher interface {
	SearchNeighbors(
		ctx context.Context,
		mediaType domain.MediaType,
		query []float32,
		exclude []int64,
		k int,
	) ([]domain.NeighborCandidate, error)
}

// NullNeighborSearcher is a null implementation of NeighborSearcher.
type NullNeighborSearcher struct{}

var _ NeighborSearcher = NullNeighborSearcher{}

func (NullNeighborSearcher) SearchNeighbors(
	_ context.Context,
	_ domain.MediaType,
	_ []float32,
	_ []int64,
	_ int,
) ([]domain.NeighborCandidate, error) {
	return nil, nil
}
