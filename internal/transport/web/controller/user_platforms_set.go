package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type UserPlatformsSetBody struct {
	PlatformIDs []int64 `json:"platform_ids"`
}

type UserPlatformsSet struct {
	Replacer datasources.UserPlatformsReplacer
}

func (c UserPlatformsSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body UserPlatformsSetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode platforms body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := c.Replacer.ReplaceUserPlatforms(ctx, domain.UserIDFromContext(ctx), body.PlatformIDs)
	if err != nil {
		logger.ErrorContext(ctx, "unable to replace user platforms", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
