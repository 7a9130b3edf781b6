package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

var _ datasources.ItemEnricher = (*Client)(nil)
var _ datasources.TrendingLister = (*Client)(nil)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client fetches display metadata from The Movie Database. Every lookup is
// bounded by its own timeout so one slow call cannot stall a response.
type Client struct {
	apiKey        string
	language      string
	lookupTimeout time.Duration
	baseURL       string
	httpClient    *http.Client
}

// NewClient creates a new TMDB client. lookupTimeout bounds each
// individual metadata lookup.
func NewClient(apiKey, language string, lookupTimeout time.Duration) *Client {
	return &Client{
		apiKey:        apiKey,
		language:      language,
		lookupTimeout: lookupTimeout,
		baseURL:       defaultBaseURL,
		httpClient:    http.DefaultClient,
	}
}

type itemDetailsResponse struct {
	Title string `json:"title"` // movies
	Name  string `json:"name"`  // series
}

type trendingResponse struct {
	Results []struct {
		ID           int64  `json:"id"`
		Title        string `json:"title"`
		Name         string `json:"name"`
		Overview     string `json:"overview"`
		PosterPath   string `json:"poster_path"`
		ReleaseDate  string `json:"release_date"`
		FirstAirDate string `json:"first_air_date"`
	} `json:"results"`
}

// DisplayTitle resolves an item's title. Returns domain.ErrNotFound for
// unknown items; any other failure is a transient lookup error the caller
// should degrade on, not propagate.
func (c *Client) DisplayTitle(
	ctx context.Context, itemID int64, mediaType domain.MediaType,
) (string, error) {
	path, err := detailsPath(itemID, mediaType)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	var details itemDetailsResponse
	if err := c.getJSON(ctx, path, nil, &details); err != nil {
		return "", err
	}

	if details.Title != "" {
		return details.Title, nil
	}
	return details.Name, nil
}

func (c *Client) ListTrending(
	ctx context.Context, mediaType domain.MediaType, limit int,
) ([]domain.TrendingItem, error) {
	path, err := trendingPath(mediaType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	var trending trendingResponse
	if err := c.getJSON(ctx, path, nil, &trending); err != nil {
		return nil, err
	}

	items := make([]domain.TrendingItem, 0, limit)
	for _, result := range trending.Results {
		if len(items) == limit {
			break
		}

		title := result.Title
		if title == "" {
			title = result.Name
		}
		releaseDate := result.ReleaseDate
		if releaseDate == "" {
			releaseDate = result.FirstAirDate
		}

		items = append(items, domain.TrendingItem{
			ItemID:      result.ID,
			Title:       title,
			Overview:    result.Overview,
			PosterPath:  result.PosterPath,
			ReleaseDate: releaseDate,
		})
	}

	return items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func detailsPath(itemID int64, mediaType domain.MediaType) (string, error) {
	switch mediaType {
	case domain.MediaTypeMovie:
		return fmt.Sprintf("/movie/%d", itemID), nil
	case domain.MediaTypeSeries:
		return fmt.Sprintf("/tv/%d", itemID), nil
	default:
		return "", fmt.Errorf("unknown media type [%s]", mediaType)
	}
}

func trendingPath(mediaType domain.MediaType) (string, error) {
	switch mediaType {
	case domain.MediaTypeMovie:
		return "/trending/movie/week", nil
	case domain.MediaTypeSeries:
		return "/trending/tv/week", nil
	default:
		return "", fmt.Errorf("unknown media type [%s]", mediaType)
	}
}
