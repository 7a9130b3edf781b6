package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email address already in use")

// RegisterUserRequest is the request for the RegisterUser command.
type RegisterUserRequest struct {
	Username string
	Email    string
	Password string
}

// RegisterUser creates a new account with a bcrypt-hashed password.
type RegisterUser struct {
	UserGetter  datasources.UserByEmailGetter
	UserCreator datasources.UserCreator
}

// NewRegisterUser creates a properly initialized RegisterUser command.
func NewRegisterUser(
	userGetter datasources.UserByEmailGetter,
	userCreator datasources.UserCreator,
) *RegisterUser {
	return &RegisterUser{
		UserGetter:  userGetter,
		UserCreator: userCreator,
	}
}

// Execute registers the account and returns its user ID.
func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (int64, error) {
	_, err := c.UserGetter.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return 0, ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("checking for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	userID, err := c.UserCreator.CreateUser(ctx, req.Username, req.Email, string(hash))
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	return userID, nil
}
