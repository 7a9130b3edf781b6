package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	cmdmocks "github.com/hcridlig/moovie-app-sub000/internal/command/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID int64) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func TestSimilarItemsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		itemID      string
		queryString string
		wantReq     command.RecommendSimilarRequest
		items       []domain.SimilarItem
		cmdErr      error
		wantStatus  int
		wantItems   []domain.SimilarItem
		skipCmd     bool
	}{
		{
			name:   "successful_list",
			itemID: "1",
			wantReq: command.RecommendSimilarRequest{
				ItemID:    1,
				MediaType: domain.MediaTypeMovie,
				Limit:     10,
			},
			items: []domain.SimilarItem{
				{ItemID: 2, Distance: 0.1, Title: "Two"},
				{ItemID: 3, Distance: 0.2, Title: "Three"},
			},
			wantStatus: http.StatusOK,
			wantItems: []domain.SimilarItem{
				{ItemID: 2, Distance: 0.1, Title: "Two"},
				{ItemID: 3, Distance: 0.2, Title: "Three"},
			},
		},
		{
			name:        "series_with_custom_limit",
			itemID:      "9",
			queryString: "?media_type=series&limit=3",
			wantReq: command.RecommendSimilarRequest{
				ItemID:    9,
				MediaType: domain.MediaTypeSeries,
				Limit:     3,
			},
			items:      nil,
			wantStatus: http.StatusOK,
			wantItems:  []domain.SimilarItem{},
		},
		{
			name:       "invalid_item_id",
			itemID:     "abc",
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name:        "invalid_media_type",
			itemID:      "1",
			queryString: "?media_type=podcast",
			wantStatus:  http.StatusBadRequest,
			skipCmd:     true,
		},
		{
			name:        "limit_exceeds_maximum",
			itemID:      "1",
			queryString: "?limit=1000",
			wantStatus:  http.StatusBadRequest,
			skipCmd:     true,
		},
		{
			name:   "not_indexed_item",
			itemID: "404",
			wantReq: command.RecommendSimilarRequest{
				ItemID:    404,
				MediaType: domain.MediaTypeMovie,
				Limit:     10,
			},
			cmdErr:     fmt.Errorf("item 404: %w", domain.ErrItemNotIndexed),
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "command_error",
			itemID: "1",
			wantReq: command.RecommendSimilarRequest{
				ItemID:    1,
				MediaType: domain.MediaTypeMovie,
				Limit:     10,
			},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recommendCmd := cmdmocks.NewMockCommand[command.RecommendSimilarRequest, []domain.SimilarItem](t)
			if !tc.skipCmd {
				recommendCmd.EXPECT().
					Execute(mock.Anything, tc.wantReq).
					Return(tc.items, tc.cmdErr)
			}

			ctrl := SimilarItemsList{
				RecommendCmd: recommendCmd,
				DefaultLimit: 10,
				MaxLimit:     100,
			}

			req := httptest.NewRequest(http.MethodGet, "/recommendations/items/"+tc.itemID+tc.queryString, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"item_id": tc.itemID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var body SimilarItemsResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tc.wantItems, body.Data)
			}
		})
	}
}
