package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type TrendingRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Trending        datasources.TrendingLister
	Limit           int
	CacheMaxAge     time.Duration
}

func (c TrendingRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	mediaType, err := mediaTypeFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse media type in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Trending %ss", mediaType),
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of titles currently trending on the metadata provider",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	items, err := c.Trending.ListTrending(ctx, mediaType, c.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch trending titles for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s-%d", mediaType, item.ItemID),
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
			Description: item.Overview,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
