package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key", "en-US", time.Second)
	client.baseURL = srv.URL
	return client
}

func TestClient_DisplayTitle(t *testing.T) {
	t.Run("movie_title", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/603", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			_, _ = w.Write([]byte(`{"title": "The Matrix"}`))
		})

		title, err := client.DisplayTitle(context.Background(), 603, domain.MediaTypeMovie)
		require.NoError(t, err)
		assert.Equal(t, "The Matrix", title)
	})

	t.Run("series_falls_back_to_name", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tv/1396", r.URL.Path)
			_, _ = w.Write([]byte(`{"name": "Breaking Bad"}`))
		})

		title, err := client.DisplayTitle(context.Background(), 1396, domain.MediaTypeSeries)
		require.NoError(t, err)
		assert.Equal(t, "Breaking Bad", title)
	})

	t.Run("unknown_item", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.DisplayTitle(context.Background(), 999999, domain.MediaTypeMovie)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("server_error", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.DisplayTitle(context.Background(), 603, domain.MediaTypeMovie)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClient_ListTrending(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		_, _ = w.Write([]byte(`{"results": [
			{"id": 1, "title": "One", "overview": "first"},
			{"id": 2, "title": "Two"},
			{"id": 3, "title": "Three"}
		]}`))
	})

	items, err := client.ListTrending(context.Background(), domain.MediaTypeMovie, 2)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, domain.TrendingItem{ItemID: 1, Title: "One", Overview: "first"}, items[0])
	assert.Equal(t, domain.TrendingItem{ItemID: 2, Title: "Two"}, items[1])
}
