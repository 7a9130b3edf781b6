package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type SimilarItemsResponse struct {
	Data []domain.SimilarItem `json:"data"`
}

type SimilarItemsList struct {
	RecommendCmd command.Command[command.RecommendSimilarRequest, []domain.SimilarItem]
	DefaultLimit int
	MaxLimit     int
	CacheMaxAge  time.Duration
}

func (c SimilarItemsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["item_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "invalid item ID", "item_id", vars["item_id"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit, err := limitFromQuery(r.URL.Query(), "limit", c.DefaultLimit, c.MaxLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.RecommendCmd.Execute(ctx, command.RecommendSimilarRequest{
		ItemID:    itemID,
		MediaType: mediaType,
		Limit:     limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrItemNotIndexed) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch similar items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []domain.SimilarItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(SimilarItemsResponse{Data: items}); err != nil {
		logger.ErrorContext(ctx, "unable to write similar items to response", "error", err)
	}
}
