package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type RecommendationsResponse struct {
	Data []domain.Recommendation `json:"data"`
}

type UserRecommendationsList struct {
	RecommendCmd          command.Command[command.RecommendForUserRequest, []domain.Recommendation]
	DefaultPerSourceLimit int
	MaxPerSourceLimit     int
	MaxTotalLimit         int
}

func (c UserRecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	perSourceLimit, err := limitFromQuery(
		r.URL.Query(), "per_source_limit", c.DefaultPerSourceLimit, c.MaxPerSourceLimit,
	)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse per-source limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	totalLimit, err := limitFromQuery(r.URL.Query(), "limit", 0, c.MaxTotalLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rows, err := c.RecommendCmd.Execute(ctx, command.RecommendForUserRequest{
		UserID:         domain.UserIDFromContext(ctx),
		MediaType:      mediaType,
		PerSourceLimit: perSourceLimit,
		TotalLimit:     totalLimit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to generate recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []domain.Recommendation{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsResponse{Data: rows}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations to response", "error", err)
	}
}
