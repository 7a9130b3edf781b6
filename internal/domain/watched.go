package domain

import "time"

// WatchedItem records that a user has seen a catalog item. Watching is
// idempotent; the first recording wins and keeps its timestamp.
type WatchedItem struct {
	ItemID    int64     `json:"item_id"`
	MediaType MediaType `json:"media_type"`
	WatchedAt time.Time `json:"watched_at"`
}
