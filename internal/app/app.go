package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mysql"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources/pinecone"
	"github.com/hcridlig/moovie-app-sub000/internal/datasources/tmdb"
	"github.com/hcridlig/moovie-app-sub000/internal/recommend"
	"github.com/hcridlig/moovie-app-sub000/internal/transport/web/router"
	"github.com/hcridlig/moovie-app-sub000/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	neighbors, err := setupNeighborSearcher(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up neighbor searcher: %w", err)
	}

	enricher, trending, err := setupEnrichment(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up enrichment: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	limits := DefaultLimitsConfig()

	httpRouter, err := router.MakeRouter(router.Config{
		Users:     repo,
		Prefs:     repo,
		Platforms: repo,
		Watched:   repo,
		Trending:  trending,

		RecommendSimilarCmd: command.NewRecommendSimilar(repo, neighbors, enricher),
		RecommendForUserCmd: command.NewRecommendForUser(repo, repo, neighbors, enricher),
		SetPreferenceCmd:    command.NewSetPreference(repo, repo),
		DeletePreferenceCmd: command.NewDeletePreference(repo, repo),
		RegisterUserCmd:     command.NewRegisterUser(repo, repo),
		LoginUserCmd: command.NewLoginUser(
			repo, repo, repo,
			MustGetEnvAsDuration(ctx, "SESSION_TTL"),
		),
		MarkWatchedCmd: command.NewMarkWatched(repo, repo),

		DefaultSimilarLimit:   limits.DefaultSimilarLimit,
		MaxSimilarLimit:       limits.MaxSimilarLimit,
		DefaultPerSourceLimit: limits.DefaultPerSourceLimit,
		MaxPerSourceLimit:     limits.MaxPerSourceLimit,
		MaxTotalLimit:         limits.MaxTotalLimit,
		TrendingLimit:         limits.TrendingLimit,

		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),

		SimilarCacheMaxAge:  MustGetEnvAsDuration(ctx, "SIMILAR_CACHE_MAX_AGE"),
		TrendingCacheMaxAge: MustGetEnvAsDuration(ctx, "TRENDING_CACHE_MAX_AGE"),

		AuthMiddleware: authMiddleware,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	repo, err := mysql.Open(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return repo, nil
}

func setupNeighborSearcher(
	ctx context.Context, repo *mysql.Repository,
) (datasources.NeighborSearcher, error) {
	switch driver := MustGetEnvAsString(ctx, "NEIGHBOR_DRIVER"); driver {
	case "null":
		return datasources.NullNeighborSearcher{}, nil
	case "exact":
		metric, err := metricFromEnv(ctx)
		if err != nil {
			return nil, err
		}
		return recommend.NewEngine(repo, metric), nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown neighbor driver [%s]", driver)
	}
}

func metricFromEnv(ctx context.Context) (recommend.Metric, error) {
	switch metric := MustGetEnvAsString(ctx, "NEIGHBOR_METRIC"); metric {
	case "cosine":
		return recommend.CosineDistance, nil
	case "euclidean":
		return recommend.EuclideanDistance, nil
	default:
		return nil, fmt.Errorf("unknown neighbor metric [%s]", metric)
	}
}

func setupEnrichment(
	ctx context.Context,
) (datasources.ItemEnricher, datasources.TrendingLister, error) {
	switch driver := MustGetEnvAsString(ctx, "ENRICHMENT_DRIVER"); driver {
	case "null":
		return datasources.NullItemEnricher{}, datasources.NullTrendingLister{}, nil
	case "tmdb":
		client := tmdb.NewClient(
			MustGetEnvAsString(ctx, "TMDB_API_KEY"),
			MustGetEnvAsString(ctx, "TMDB_LANGUAGE"),
			MustGetEnvAsDuration(ctx, "TMDB_LOOKUP_TIMEOUT"),
		)
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("unknown enrichment driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, repo *mysql.Repository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "session":
			validators = append(validators, router.NewSessionValidator(repo))
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
				repo,
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
