package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestTrendingList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		queryString   string
		wantMediaType domain.MediaType
		items         []domain.TrendingItem
		listErr       error
		wantStatus    int
		skipList      bool
	}{
		{
			name:          "default_media_type_is_movie",
			wantMediaType: domain.MediaTypeMovie,
			items: []domain.TrendingItem{
				{ItemID: 1, Title: "One"},
				{ItemID: 2, Title: "Two"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "series_trending",
			queryString:   "?media_type=series",
			wantMediaType: domain.MediaTypeSeries,
			items:         nil,
			wantStatus:    http.StatusOK,
		},
		{
			name:        "invalid_media_type",
			queryString: "?media_type=podcast",
			wantStatus:  http.StatusBadRequest,
			skipList:    true,
		},
		{
			name:          "provider_error",
			wantMediaType: domain.MediaTypeMovie,
			listErr:       errors.New("tmdb unavailable"),
			wantStatus:    http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trending := mocks.NewMockTrendingLister(t)
			if !tc.skipList {
				trending.EXPECT().
					ListTrending(mock.Anything, tc.wantMediaType, 10).
					Return(tc.items, tc.listErr)
			}

			ctrl := TrendingList{
				Trending:    trending,
				Limit:       10,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/trending"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

				var body TrendingResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				if tc.items == nil {
					assert.Empty(t, body.Data)
				} else {
					assert.Equal(t, tc.items, body.Data)
				}
			}
		})
	}
}
