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

func TestRecommendForUser_Execute(t *testing.T) {
	vectors := map[int64][]float32{
		1: {1, 0},
		2: {0, 1},
	}

	t.Run("no_likes_returns_empty", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return(nil, nil)

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		rows, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
		})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("liked_list_error_aborts", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return(nil, errors.New("database error"))

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		_, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
		})
		require.Error(t, err)
	})

	t.Run("merges_per_source_results_in_liked_order", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		likedIDs := []int64{1, 2}
		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return(likedIDs, nil)

		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(1), domain.MediaTypeMovie).
			Return(vectors[1], nil)
		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(2), domain.MediaTypeMovie).
			Return(vectors[2], nil)

		// Candidate 5 appears via both liked items: one row per source,
		// no cross-source dedup.
		searcher.EXPECT().
			SearchNeighbors(mock.Anything, domain.MediaTypeMovie, vectors[1], likedIDs, 5).
			Return([]domain.NeighborCandidate{{ItemID: 5, Distance: 0.1}}, nil)
		searcher.EXPECT().
			SearchNeighbors(mock.Anything, domain.MediaTypeMovie, vectors[2], likedIDs, 5).
			Return([]domain.NeighborCandidate{
				{ItemID: 5, Distance: 0.2},
				{ItemID: 6, Distance: 0.3},
			}, nil)

		enricher.EXPECT().
			DisplayTitle(mock.Anything, int64(5), domain.MediaTypeMovie).
			Return("Five", nil)
		enricher.EXPECT().
			DisplayTitle(mock.Anything, int64(6), domain.MediaTypeMovie).
			Return("Six", nil)

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		rows, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, []domain.Recommendation{
			{SourceItemID: 1, ItemID: 5, MediaType: domain.MediaTypeMovie, Distance: 0.1, Title: "Five"},
			{SourceItemID: 2, ItemID: 5, MediaType: domain.MediaTypeMovie, Distance: 0.2, Title: "Five"},
			{SourceItemID: 2, ItemID: 6, MediaType: domain.MediaTypeMovie, Distance: 0.3, Title: "Six"},
		}, rows)
	})

	t.Run("liked_item_without_embedding_skipped", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		likedIDs := []int64{1, 2}
		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return(likedIDs, nil)

		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(1), domain.MediaTypeMovie).
			Return(nil, domain.ErrNotFound)
		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(2), domain.MediaTypeMovie).
			Return(vectors[2], nil)

		searcher.EXPECT().
			SearchNeighbors(mock.Anything, domain.MediaTypeMovie, vectors[2], likedIDs, 5).
			Return([]domain.NeighborCandidate{{ItemID: 6, Distance: 0.3}}, nil)

		enricher.EXPECT().
			DisplayTitle(mock.Anything, int64(6), domain.MediaTypeMovie).
			Return("Six", nil)

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		rows, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, []domain.Recommendation{
			{SourceItemID: 2, ItemID: 6, MediaType: domain.MediaTypeMovie, Distance: 0.3, Title: "Six"},
		}, rows)
	})

	t.Run("embedding_storage_error_aborts", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return([]int64{1}, nil)

		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(1), domain.MediaTypeMovie).
			Return(nil, errors.New("database error"))

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		_, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
		})
		require.Error(t, err)
	})

	t.Run("total_limit_truncates_merged_rows", func(t *testing.T) {
		liked := mocks.NewMockLikedItemIDsLister(t)
		fetcher := mocks.NewMockEmbeddingFetcher(t)
		searcher := mocks.NewMockNeighborSearcher(t)
		enricher := mocks.NewMockItemEnricher(t)

		likedIDs := []int64{1}
		liked.EXPECT().
			ListLikedItemIDs(mock.Anything, int64(7), domain.MediaTypeMovie).
			Return(likedIDs, nil)

		fetcher.EXPECT().
			FetchEmbedding(mock.Anything, int64(1), domain.MediaTypeMovie).
			Return(vectors[1], nil)

		searcher.EXPECT().
			SearchNeighbors(mock.Anything, domain.MediaTypeMovie, vectors[1], likedIDs, 5).
			Return([]domain.NeighborCandidate{
				{ItemID: 5, Distance: 0.1},
				{ItemID: 6, Distance: 0.2},
				{ItemID: 8, Distance: 0.3},
			}, nil)

		enricher.EXPECT().
			DisplayTitle(mock.Anything, mock.Anything, domain.MediaTypeMovie).
			Return("", nil)

		cmd := NewRecommendForUser(liked, fetcher, searcher, enricher)

		rows, err := cmd.Execute(context.Background(), RecommendForUserRequest{
			UserID:         7,
			MediaType:      domain.MediaTypeMovie,
			PerSourceLimit: 5,
			TotalLimit:     2,
		})
		require.NoError(t, err)

		require.Len(t, rows, 2)
		assert.Equal(t, int64(5), rows[0].ItemID)
		assert.Equal(t, int64(6), rows[1].ItemID)
	})
}
