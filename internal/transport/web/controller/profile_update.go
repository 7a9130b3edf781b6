package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type ProfileUpdateBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileUpdate struct {
	Updater datasources.UserProfileUpdater
}

func (c ProfileUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body ProfileUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode profile body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.Username == "" || body.Email == "" {
		logger.ErrorContext(ctx, "missing profile fields")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.Updater.UpdateUserProfile(
		ctx, domain.UserIDFromContext(ctx), body.Username, body.Email,
	)
	if err != nil {
		logger.ErrorContext(ctx, "unable to update user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(user); err != nil {
		logger.ErrorContext(ctx, "unable to write user profile to response", "error", err)
	}
}
