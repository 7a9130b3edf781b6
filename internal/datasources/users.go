package datasources

import (
	"context"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// UserRepository combines all user account access.
type UserRepository interface {
	UserCreator
	UserByEmailGetter
	UserByIDGetter
	UserByAuth0SubjectGetter
	UserLastLoginUpdater
	UserProfileUpdater
}

// UserCreator inserts a new account and returns its ID.
type UserCreator interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// UserByEmailGetter returns domain.ErrNotFound when no account exists.
type UserByEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type UserByIDGetter interface {
	GetUserByID(ctx context.Context, userID int64) (domain.User, error)
}

// UserByAuth0SubjectGetter maps an external Auth0 subject to a local
// account. Returns domain.ErrNotFound when the subject is unknown.
type UserByAuth0SubjectGetter interface {
	GetUserByAuth0Subject(ctx context.Context, subject string) (domain.User, error)
}

type UserLastLoginUpdater interface {
	UpdateUserLastLogin(ctx context.Context, userID int64) error
}

// UserProfileUpdater changes an account's mutable fields and returns the
// resulting row. Returns domain.ErrNotFound for an unknown user.
type UserProfileUpdater interface {
	UpdateUserProfile(ctx context.Context, userID int64, username, email string) (domain.User, error)
}
