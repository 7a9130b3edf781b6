package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type TrendingResponse struct {
	Data []domain.TrendingItem `json:"data"`
}

type TrendingList struct {
	Trending    datasources.TrendingLister
	Limit       int
	CacheMaxAge time.Duration
}

func (c TrendingList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.Trending.ListTrending(ctx, mediaType, c.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch trending titles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []domain.TrendingItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(TrendingResponse{Data: items}); err != nil {
		logger.ErrorContext(ctx, "unable to write trending titles to response", "error", err)
	}
}
