package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// WatchedRepository combines watched-item tracking access.
type WatchedRepository interface {
	WatchedItemAdder
	WatchedItemsLister
}

// WatchedItemAdder records that a user watched an item. Recording the
// same (user, item, media type) tuple again is a no-op.
type WatchedItemAdder interface {
	AddWatchedItem(ctx context.Context, userID, itemID int64, mediaType domain.MediaType) error
}

// WatchedItemsLister returns a user's watched items for a media type, in
// the order they were first recorded.
type WatchedItemsLister interface {
	ListWatchedItems(ctx context.Context, userID int64, mediaType domain.MediaType) ([]domain.WatchedItem, error)
}
