package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type PreferencesResponse struct {
	Data []domain.Preference `json:"data"`
}

type PreferencesList struct {
	Lister datasources.PreferenceLister
}

func (c PreferencesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	prefs, err := c.Lister.ListPreferences(ctx, domain.UserIDFromContext(ctx), mediaType)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if prefs == nil {
		prefs = []domain.Preference{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(PreferencesResponse{Data: prefs}); err != nil {
		logger.ErrorContext(ctx, "unable to write preferences to response", "error", err)
	}
}
