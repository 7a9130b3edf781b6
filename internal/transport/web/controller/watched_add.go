package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type WatchedAddBody struct {
	ItemID    int64  `json:"item_id"`
	MediaType string `json:"media_type"`
}

type WatchedAdd struct {
	MarkCmd command.Command[command.MarkWatchedRequest, command.Empty]
}

func (c WatchedAdd) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body WatchedAddBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode watched item body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.ItemID <= 0 {
		logger.ErrorContext(ctx, "missing or invalid item ID", "item_id", body.ItemID)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mediaType, err := domain.ParseMediaType(body.MediaType)
	if err != nil {
		logger.ErrorContext(ctx, "invalid media type", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.MarkCmd.Execute(ctx, command.MarkWatchedRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ItemID:    body.ItemID,
		MediaType: mediaType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to mark item watched", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
