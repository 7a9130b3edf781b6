package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionTokenPrefix is the prefix for session tokens in the Authorization
// header.
const SessionTokenPrefix = "session|"

// LoginUserRequest is the request for the LoginUser command.
type LoginUserRequest struct {
	Email    string
	Password string
}

// LoginUserResponse is the response from the LoginUser command.
type LoginUserResponse struct {
	Token string
	User  domain.User
}

// LoginUser verifies credentials and issues an opaque session token.
// Only the SHA-256 hash of the token is persisted.
type LoginUser struct {
	UserGetter       datasources.UserByEmailGetter
	SessionCreator   datasources.SessionCreator
	LastLoginUpdater datasources.UserLastLoginUpdater
	SessionTTL       time.Duration
}

// NewLoginUser creates a properly initialized LoginUser command.
func NewLoginUser(
	userGetter datasources.UserByEmailGetter,
	sessionCreator datasources.SessionCreator,
	lastLoginUpdater datasources.UserLastLoginUpdater,
	sessionTTL time.Duration,
) *LoginUser {
	return &LoginUser{
		UserGetter:       userGetter,
		SessionCreator:   sessionCreator,
		LastLoginUpdater: lastLoginUpdater,
		SessionTTL:       sessionTTL,
	}
}

// Execute authenticates the user and returns a fresh session token.
func (c *LoginUser) Execute(ctx context.Context, req LoginUserRequest) (LoginUserResponse, error) {
	user, err := c.UserGetter.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginUserResponse{}, ErrInvalidCredentials
		}
		return LoginUserResponse{}, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(req.Password),
	); err != nil {
		return LoginUserResponse{}, ErrInvalidCredentials
	}

	// Cryptographically secure random token (32 bytes = 64 hex chars)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return LoginUserResponse{}, fmt.Errorf("generating random token: %w", err)
	}

	fullToken := SessionTokenPrefix + hex.EncodeToString(tokenBytes)
	hash := sha256.Sum256([]byte(fullToken))
	tokenHash := hex.EncodeToString(hash[:])

	sessionID := uuid.New().String()
	expiresAt := time.Now().Add(c.SessionTTL)

	if err := c.SessionCreator.CreateSession(ctx, sessionID, user.ID, tokenHash, expiresAt); err != nil {
		return LoginUserResponse{}, fmt.Errorf("creating session: %w", err)
	}

	if err := c.LastLoginUpdater.UpdateUserLastLogin(ctx, user.ID); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to update last login", "error", err)
	}

	return LoginUserResponse{
		Token: fullToken,
		User:  user,
	}, nil
}
