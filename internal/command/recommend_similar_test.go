package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestRecommendSimilar_Execute(t *testing.T) {
	queryVector := []float32{1, 0, 0}

	cases := []struct {
		name       string
		fetchErr   error
		neighbors  []domain.NeighborCandidate
		searchErr  error
		titles     map[int64]string
		titleErrs  map[int64]error
		expected   []domain.SimilarItem
		wantErr    error
		skipSearch bool
	}{
		{
			name: "success_with_titles",
			neighbors: []domain.NeighborCandidate{
				{ItemID: 2, Distance: 0.1},
				{ItemID: 3, Distance: 0.2},
			},
			titles: map[int64]string{2: "Two", 3: "Three"},
			expected: []domain.SimilarItem{
				{ItemID: 2, Distance: 0.1, Title: "Two"},
				{ItemID: 3, Distance: 0.2, Title: "Three"},
			},
		},
		{
			name: "enrichment_failure_degrades_to_blank_title",
			neighbors: []domain.NeighborCandidate{
				{ItemID: 2, Distance: 0.1},
				{ItemID: 3, Distance: 0.2},
			},
			titles:    map[int64]string{2: "Two"},
			titleErrs: map[int64]error{3: errors.New("tmdb unavailable")},
			expected: []domain.SimilarItem{
				{ItemID: 2, Distance: 0.1, Title: "Two"},
				{ItemID: 3, Distance: 0.2},
			},
		},
		{
			name:       "query_item_not_indexed",
			fetchErr:   domain.ErrNotFound,
			wantErr:    domain.ErrItemNotIndexed,
			skipSearch: true,
		},
		{
			name:       "fetch_error_propagated",
			fetchErr:   errors.New("database error"),
			wantErr:    errors.New("database error"),
			skipSearch: true,
		},
		{
			name:      "search_error_propagated",
			searchErr: errors.New("search failed"),
			wantErr:   errors.New("search failed"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockEmbeddingFetcher(t)
			searcher := mocks.NewMockNeighborSearcher(t)
			enricher := mocks.NewMockItemEnricher(t)

			fetchedVector := queryVector
			if tc.fetchErr != nil {
				fetchedVector = nil
			}
			fetcher.EXPECT().
				FetchEmbedding(mock.Anything, int64(1), domain.MediaTypeMovie).
				Return(fetchedVector, tc.fetchErr)

			if !tc.skipSearch {
				searcher.EXPECT().
					SearchNeighbors(mock.Anything, domain.MediaTypeMovie, queryVector, []int64{1}, 10).
					Return(tc.neighbors, tc.searchErr)
			}

			for itemID, title := range tc.titles {
				enricher.EXPECT().
					DisplayTitle(mock.Anything, itemID, domain.MediaTypeMovie).
					Return(title, nil)
			}
			for itemID, err := range tc.titleErrs {
				enricher.EXPECT().
					DisplayTitle(mock.Anything, itemID, domain.MediaTypeMovie).
					Return("", err)
			}

			cmd := NewRecommendSimilar(fetcher, searcher, enricher)

			result, err := cmd.Execute(context.Background(), RecommendSimilarRequest{
				ItemID:    1,
				MediaType: domain.MediaTypeMovie,
				Limit:     10,
			})
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, domain.ErrItemNotIndexed) {
					assert.ErrorIs(t, err, domain.ErrItemNotIndexed)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
