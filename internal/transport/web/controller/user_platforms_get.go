package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type PlatformsResponse struct {
	PlatformIDs []int64 `json:"platform_ids"`
}

type UserPlatformsGet struct {
	Lister datasources.UserPlatformIDsLister
}

func (c UserPlatformsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	platformIDs, err := c.Lister.ListUserPlatformIDs(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		logger.ErrorContext(ctx, "unable to list user platforms", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if platformIDs == nil {
		platformIDs = []int64{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(PlatformsResponse{PlatformIDs: platformIDs}); err != nil {
		logger.ErrorContext(ctx, "unable to write platforms to response", "error", err)
	}
}
