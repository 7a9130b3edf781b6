package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type ProfileGet struct {
	UserGetter datasources.UserByIDGetter
}

func (c ProfileGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	user, err := c.UserGetter.GetUserByID(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(user); err != nil {
		logger.ErrorContext(ctx, "unable to write user profile to response", "error", err)
	}
}
