package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type WatchedItemsResponse struct {
	Data []domain.WatchedItem `json:"data"`
}

type WatchedList struct {
	Lister datasources.WatchedItemsLister
}

func (c WatchedList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.Lister.ListWatchedItems(ctx, domain.UserIDFromContext(ctx), mediaType)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list watched items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []domain.WatchedItem{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(WatchedItemsResponse{Data: items}); err != nil {
		logger.ErrorContext(ctx, "unable to write watched items to response", "error", err)
	}
}
