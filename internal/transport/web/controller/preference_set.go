package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type PreferenceSetBody struct {
	ItemID    int64  `json:"item_id"`
	MediaType string `json:"media_type"`
	Liked     bool   `json:"liked"`
}

type PreferenceSet struct {
	SetCmd command.Command[command.SetPreferenceRequest, command.Empty]
}

func (c PreferenceSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body PreferenceSetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode preference body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mediaType, err := domain.ParseMediaType(body.MediaType)
	if err != nil {
		logger.ErrorContext(ctx, "invalid media type", "media_type", body.MediaType)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.ItemID <= 0 {
		logger.ErrorContext(ctx, "invalid item ID", "item_id", body.ItemID)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.SetCmd.Execute(ctx, command.SetPreferenceRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ItemID:    body.ItemID,
		MediaType: mediaType,
		Liked:     body.Liked,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to set preference", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
