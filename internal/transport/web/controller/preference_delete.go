package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type PreferenceDeleteBody struct {
	ItemID    int64  `json:"item_id"`
	MediaType string `json:"media_type"`
}

type PreferenceDelete struct {
	DeleteCmd command.Command[command.DeletePreferenceRequest, command.Empty]
}

func (c PreferenceDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body PreferenceDeleteBody
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

	_, err = c.DeleteCmd.Execute(ctx, command.DeletePreferenceRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ItemID:    body.ItemID,
		MediaType: mediaType,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete preference", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
