package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	cmdmocks "github.com/hcridlig/moovie-app-sub000/internal/command/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestWatchedAdd_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantReq    command.MarkWatchedRequest
		cmdErr     error
		wantStatus int
		skipCmd    bool
	}{
		{
			name: "watched_item_recorded",
			body: `{"item_id": 3, "media_type": "movie"}`,
			wantReq: command.MarkWatchedRequest{
				UserID:    7,
				ItemID:    3,
				MediaType: domain.MediaTypeMovie,
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "unknown_item",
			body: `{"item_id": 999, "media_type": "movie"}`,
			wantReq: command.MarkWatchedRequest{
				UserID:    7,
				ItemID:    999,
				MediaType: domain.MediaTypeMovie,
			},
			cmdErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed_body",
			body:       `{"item_id": `,
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name:       "missing_item_id",
			body:       `{"media_type": "movie"}`,
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name:       "invalid_media_type",
			body:       `{"item_id": 3, "media_type": "podcast"}`,
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name: "command_error",
			body: `{"item_id": 3, "media_type": "movie"}`,
			wantReq: command.MarkWatchedRequest{
				UserID:    7,
				ItemID:    3,
				MediaType: domain.MediaTypeMovie,
			},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			markCmd := cmdmocks.NewMockCommand[command.MarkWatchedRequest, command.Empty](t)
			if !tc.skipCmd {
				markCmd.EXPECT().
					Execute(mock.Anything, tc.wantReq).
					Return(command.Empty{}, tc.cmdErr)
			}

			ctrl := WatchedAdd{MarkCmd: markCmd}

			req := httptest.NewRequest(http.MethodPost, "/users/me/watched", strings.NewReader(tc.body))
			req = testContextWithUserID(7)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestWatchedList_ServeHTTP(t *testing.T) {
	watchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		queryString   string
		wantMediaType domain.MediaType
		items         []domain.WatchedItem
		listErr       error
		wantStatus    int
		skipList      bool
	}{
		{
			name:          "default_media_type_is_movie",
			wantMediaType: domain.MediaTypeMovie,
			items: []domain.WatchedItem{
				{ItemID: 3, MediaType: domain.MediaTypeMovie, WatchedAt: watchedAt},
				{ItemID: 8, MediaType: domain.MediaTypeMovie, WatchedAt: watchedAt.Add(time.Hour)},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "empty_list",
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
			name:          "storage_error",
			wantMediaType: domain.MediaTypeMovie,
			listErr:       errors.New("database error"),
			wantStatus:    http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockWatchedItemsLister(t)
			if !tc.skipList {
				lister.EXPECT().
					ListWatchedItems(mock.Anything, int64(7), tc.wantMediaType).
					Return(tc.items, tc.listErr)
			}

			ctrl := WatchedList{Lister: lister}

			req := httptest.NewRequest(http.MethodGet, "/users/me/watched"+tc.queryString, nil)
			req = testContextWithUserID(7)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var body WatchedItemsResponse
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
