package domain

import "fmt"

// MediaType discriminates between the movie and series catalogs.
// Movies and series have separate embedding spaces and separate tables.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

// ParseMediaType validates a media type received from a client.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaTypeMovie:
		return MediaTypeMovie, nil
	case MediaTypeSeries:
		return MediaTypeSeries, nil
	default:
		return "", fmt.Errorf("unknown media type [%s]", s)
	}
}

// Preference is a user's liked/disliked signal for a catalog item.
// At most one preference exists per (user, item, media type) tuple.
type Preference struct {
	UserID    int64     `json:"-"`
	ItemID    int64     `json:"item_id"`
	MediaType MediaType `json:"media_type"`
	Liked     bool      `json:"liked"`
}

// NeighborCandidate is a single nearest-neighbour result.
// Distance is non-negative; smaller means more similar.
type NeighborCandidate struct {
	ItemID   int64
	Distance float64
}

// SimilarItem is an item-similarity result with optional display metadata.
type SimilarItem struct {
	ItemID   int64   `json:"item_id"`
	Distance float64 `json:"distance"`
	Title    string  `json:"title,omitempty"`
}

// Recommendation is one personalized recommendation row. A candidate
// surfaced by several liked items appears once per source item.
type Recommendation struct {
	SourceItemID int64     `json:"source_item_id"`
	ItemID       int64     `json:"item_id"`
	MediaType    MediaType `json:"media_type"`
	Distance     float64   `json:"distance"`
	Title        string    `json:"title,omitempty"`
}

// TrendingItem is a display-only catalog entry from the metadata provider.
type TrendingItem struct {
	ItemID      int64  `json:"item_id"`
	Title       string `json:"title"`
	Overview    string `json:"overview,omitempty"`
	PosterPath  string `json:"poster_path,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}
