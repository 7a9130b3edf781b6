package datasources

import "context"

// PlatformRepository combines streaming platform association access.
type PlatformRepository interface {
	UserPlatformIDsLister
	UserPlatformsReplacer
}

type UserPlatformIDsLister interface {
	ListUserPlatformIDs(ctx context.Context, userID int64) ([]int64, error)
}

// UserPlatformsReplacer replaces a user's platform set wholesale.
type UserPlatformsReplacer interface {
	ReplaceUserPlatforms(ctx context.Context, userID int64, platformIDs []int64) error
}
