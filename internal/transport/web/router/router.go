package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
	"github.com/hcridlig/moovie-app-sub000/internal/transport/web/controller"
)

type Config struct {
	Users     datasources.UserRepository
	Prefs     datasources.PreferenceRepository
	Platforms datasources.PlatformRepository
	Watched   datasources.WatchedItemsLister
	Trending  datasources.TrendingLister

	RecommendSimilarCmd command.Command[command.RecommendSimilarRequest, []domain.SimilarItem]
	RecommendForUserCmd command.Command[command.RecommendForUserRequest, []domain.Recommendation]
	SetPreferenceCmd    command.Command[command.SetPreferenceRequest, command.Empty]
	DeletePreferenceCmd command.Command[command.DeletePreferenceRequest, command.Empty]
	RegisterUserCmd     command.Command[command.RegisterUserRequest, int64]
	LoginUserCmd        command.Command[command.LoginUserRequest, command.LoginUserResponse]
	MarkWatchedCmd      command.Command[command.MarkWatchedRequest, command.Empty]

	DefaultSimilarLimit   int
	MaxSimilarLimit       int
	DefaultPerSourceLimit int
	MaxPerSourceLimit     int
	MaxTotalLimit         int
	TrendingLimit         int

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string

	SimilarCacheMaxAge  time.Duration
	TrendingCacheMaxAge time.Duration

	AuthMiddleware func(http.Handler) http.Handler
}

func MakeRouter(cfg Config) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(cfg.AuthMiddleware)

	r.Handle("/v1/recommendations/items/{item_id}", controller.SimilarItemsList{
		RecommendCmd: cfg.RecommendSimilarCmd,
		DefaultLimit: cfg.DefaultSimilarLimit,
		MaxLimit:     cfg.MaxSimilarLimit,
		CacheMaxAge:  cfg.SimilarCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations/users/me", requireAuthMiddleware(controller.UserRecommendationsList{
		RecommendCmd:          cfg.RecommendForUserCmd,
		DefaultPerSourceLimit: cfg.DefaultPerSourceLimit,
		MaxPerSourceLimit:     cfg.MaxPerSourceLimit,
		MaxTotalLimit:         cfg.MaxTotalLimit,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/auth/register", controller.AuthRegister{
		RegisterCmd: cfg.RegisterUserCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/login", controller.AuthLogin{
		LoginCmd: cfg.LoginUserCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.ProfileGet{
		UserGetter: cfg.Users,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.ProfileUpdate{
		Updater: cfg.Users,
	})).Methods(http.MethodPut)

	r.Handle("/v1/users/me/watched", requireAuthMiddleware(controller.WatchedList{
		Lister: cfg.Watched,
	})).Methods(http.MethodGet)

	r.Handle("/v1/users/me/watched", requireAuthMiddleware(controller.WatchedAdd{
		MarkCmd: cfg.MarkWatchedCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/me/preferences", requireAuthMiddleware(controller.PreferencesList{
		Lister: cfg.Prefs,
	})).Methods(http.MethodGet)

	r.Handle("/v1/users/me/preferences", requireAuthMiddleware(controller.PreferenceSet{
		SetCmd: cfg.SetPreferenceCmd,
	})).Methods(http.MethodPut)

	r.Handle("/v1/users/me/preferences", requireAuthMiddleware(controller.PreferenceDelete{
		DeleteCmd: cfg.DeletePreferenceCmd,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/users/me/platforms", requireAuthMiddleware(controller.UserPlatformsGet{
		Lister: cfg.Platforms,
	})).Methods(http.MethodGet)

	r.Handle("/v1/users/me/platforms", requireAuthMiddleware(controller.UserPlatformsSet{
		Replacer: cfg.Platforms,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/trending", controller.TrendingList{
		Trending:    cfg.Trending,
		Limit:       cfg.TrendingLimit,
		CacheMaxAge: cfg.TrendingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss/trending", controller.TrendingRSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/rss/trending",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Trending:        cfg.Trending,
		Limit:           cfg.TrendingLimit,
		CacheMaxAge:     cfg.TrendingCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
