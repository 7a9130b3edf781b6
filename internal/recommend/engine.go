package recommend

import (
	"container/heap"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
	"github.com/hcridlig/moovie-app-sub000/internal/metrics"
)

var _ datasources.NeighborSearcher = (*Engine)(nil)

// Engine is an exact nearest-neighbour searcher. It scans every embedding
// of the requested media type and keeps the k best candidates in a bounded
// max-heap, O(n log k) per query. Results are exact, unlike the Pinecone
// driver which is approximate.
type Engine struct {
	scanner datasources.EmbeddingScanner
	metric  Metric
}

// NewEngine creates an Engine over the given embedding scanner.
// A nil metric defaults to CosineDistance.
func NewEngine(scanner datasources.EmbeddingScanner, metric Metric) *Engine {
	if metric == nil {
		metric = CosineDistance
	}
	return &Engine{scanner: scanner, metric: metric}
}

// SearchNeighbors returns up to k candidates ascending by distance, ties
// broken by ascending item ID. Excluded items and embeddings whose length
// does not match the query are skipped.
func (e *Engine) SearchNeighbors(
	ctx context.Context,
	mediaType domain.MediaType,
	query []float32,
	exclude []int64,
	k int,
) ([]domain.NeighborCandidate, error) {
	if k <= 0 || len(query) == 0 {
		return nil, nil
	}

	start := time.Now()
	rows, err := e.scanner.ScanEmbeddings(ctx, mediaType)
	if err != nil {
		return nil, fmt.Errorf("scanning embeddings: %w", err)
	}

	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	h := make(candidateHeap, 0, k)
	for _, row := range rows {
		if _, skip := excluded[row.ItemID]; skip {
			continue
		}
		if len(row.Vector) != len(query) {
			continue
		}

		cand := domain.NeighborCandidate{
			ItemID:   row.ItemID,
			Distance: e.metric(query, row.Vector),
		}

		if len(h) < k {
			heap.Push(&h, cand)
			continue
		}
		if closerThan(cand, h[0]) {
			h[0] = cand
			heap.Fix(&h, 0)
		}
	}

	result := []domain.NeighborCandidate(h)
	sort.Slice(result, func(i, j int) bool {
		return closerThan(result[i], result[j])
	})

	metrics.NeighborSearchDuration.Observe(time.Since(start).Seconds())
	metrics.NeighborCandidatesScanned.Add(float64(len(rows)))

	return result, nil
}

// closerThan orders candidates ascending by distance, then ascending by
// item ID so results are deterministic.
func closerThan(a, b domain.NeighborCandidate) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.ItemID < b.ItemID
}

// candidateHeap is a max-heap on (distance, item ID): the root is the worst
// retained candidate, so it can be replaced when a closer one appears.
type candidateHeap []domain.NeighborCandidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool { return closerThan(h[j], h[i]) }

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(domain.NeighborCandidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
