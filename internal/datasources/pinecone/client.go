package pinecone

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

var _ datasources.NeighborSearcher = (*Client)(nil)

// Client serves neighbour queries from a Pinecone index instead of the
// in-process exact engine. Results are approximate: Pinecone's ANN search
// does not guarantee exact nearest neighbours, so the exact engine remains
// the default driver.
//
// The index holds one vector per catalog item, in a namespace per media
// type ("movie"/"series"), with the item ID as vector ID and an item_id
// metadata field for exclusion filters. Pinecone returns cosine similarity
// scores; they are converted to cosine distance so both drivers rank the
// same way.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(ctx context.Context, apiKey, indexName string) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) SearchNeighbors(
	ctx context.Context,
	mediaType domain.MediaType,
	query []float32,
	exclude []int64,
	k int,
) ([]domain.NeighborCandidate, error) {
	if k <= 0 || len(query) == 0 {
		return nil, nil
	}
	if k > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", k)
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: string(mediaType),
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() { _ = idxConn.Close() }()

	filter, err := exclusionFilter(exclude)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:         query,
		TopK:           uint32(k), //nolint:gosec // bounds checked above
		MetadataFilter: filter,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var results []domain.NeighborCandidate
	for _, scoredVector := range resp.Matches {
		itemID, err := strconv.ParseInt(scoredVector.Vector.Id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unexpected pinecone vector ID format [%s]: %w", scoredVector.Vector.Id, err)
		}

		// Belt and braces: the metadata filter should already exclude these.
		if _, skip := excluded[itemID]; skip {
			continue
		}

		results = append(results, domain.NeighborCandidate{
			ItemID:   itemID,
			Distance: 1 - float64(scoredVector.Score),
		})
	}

	return results, nil
}

func exclusionFilter(exclude []int64) (*pinecone.MetadataFilter, error) {
	if len(exclude) == 0 {
		return nil, nil
	}

	excludeIDs := make([]any, 0, len(exclude))
	for _, id := range exclude {
		excludeIDs = append(excludeIDs, id)
	}

	metadataMap := map[string]any{
		"item_id": map[string]any{
			"$nin": excludeIDs,
		},
	}

	filter, err := structpb.NewStruct(metadataMap)
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}
