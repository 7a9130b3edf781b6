package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestSetPreference_Execute(t *testing.T) {
	itemVector := []float32{1, 2, 3}

	cases := []struct {
		name       string
		fetchErr   error
		wantVector []float32
		setErr     error
		wantErr    bool
	}{
		{
			name:       "vector_synced_on_success",
			wantVector: itemVector,
		},
		{
			name:       "missing_vector_skips_sync",
			fetchErr:   domain.ErrNotFound,
			wantVector: nil,
		},
		{
			name:       "vector_fetch_failure_still_records_preference",
			fetchErr:   errors.New("database error"),
			wantVector: nil,
		},
		{
			name:       "set_error_propagated",
			wantVector: itemVector,
			setErr:     errors.New("database error"),
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockEmbeddingFetcher(t)
			setter := mocks.NewMockPreferenceSetter(t)

			fetchedVector := itemVector
			if tc.fetchErr != nil {
				fetchedVector = nil
			}
			fetcher.EXPECT().
				FetchEmbedding(mock.Anything, int64(3), domain.MediaTypeSeries).
				Return(fetchedVector, tc.fetchErr)

			setter.EXPECT().
				SetPreference(mock.Anything, domain.Preference{
					UserID:    7,
					ItemID:    3,
					MediaType: domain.MediaTypeSeries,
					Liked:     true,
				}, tc.wantVector).
				Return(tc.setErr)

			cmd := NewSetPreference(fetcher, setter)

			_, err := cmd.Execute(context.Background(), SetPreferenceRequest{
				UserID:    7,
				ItemID:    3,
				MediaType: domain.MediaTypeSeries,
				Liked:     true,
			})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeletePreference_Execute(t *testing.T) {
	itemVector := []float32{1, 2, 3}

	cases := []struct {
		name       string
		fetchErr   error
		wantVector []float32
		removeErr  error
		wantErr    bool
	}{
		{
			name:       "vector_subtracted_on_success",
			wantVector: itemVector,
		},
		{
			name:       "missing_vector_skips_sync",
			fetchErr:   domain.ErrNotFound,
			wantVector: nil,
		},
		{
			name:       "remove_error_propagated",
			wantVector: itemVector,
			removeErr:  errors.New("database error"),
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockEmbeddingFetcher(t)
			remover := mocks.NewMockPreferenceRemover(t)

			fetchedVector := itemVector
			if tc.fetchErr != nil {
				fetchedVector = nil
			}
			fetcher.EXPECT().
				FetchEmbedding(mock.Anything, int64(3), domain.MediaTypeMovie).
				Return(fetchedVector, tc.fetchErr)

			remover.EXPECT().
				RemovePreference(mock.Anything, int64(7), int64(3), domain.MediaTypeMovie, tc.wantVector).
				Return(tc.removeErr)

			cmd := NewDeletePreference(fetcher, remover)

			_, err := cmd.Execute(context.Background(), DeletePreferenceRequest{
				UserID:    7,
				ItemID:    3,
				MediaType: domain.MediaTypeMovie,
			})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
