package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// PreferenceRepository combines all preference store access.
type PreferenceRepository interface {
	LikedItemIDsLister
	PreferenceLister
	PreferenceSetter
	PreferenceRemover
}

// LikedItemIDsLister returns the IDs of items a user has liked, in the
// order the preferences were first recorded.
type LikedItemIDsLister interface {
	ListLikedItemIDs(ctx context.Context, userID int64, mediaType domain.MediaType) ([]int64, error)
}

// PreferenceLister returns all of a user's preferences for a media type.
type PreferenceLister interface {
	ListPreferences(ctx context.Context, userID int64, mediaType domain.MediaType) ([]domain.Preference, error)
}

// PreferenceSetter upserts a preference. A later write for the same
// (user, item, media type) tuple replaces the earlier one. When vector is
// non-nil the user's aggregate embedding is kept in sync in the same
// transaction.
type PreferenceSetter interface {
	SetPreference(ctx context.Context, pref domain.Preference, vector []float32) error
}

// PreferenceRemover deletes a preference. When vector is non-nil and the
// removed preference was a like, the vector is subtracted from the user's
// aggregate embedding.
type PreferenceRemover interface {
	RemovePreference(
		ctx context.Context,
		userID, itemID int64,
		mediaType domain.MediaType,
		vector []float32,
	) error
}
