package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestLoginUser_Execute(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	user := domain.User{
		ID:           42,
		Username:     "someuser",
		Email:        "some@example.com",
		PasswordHash: string(passwordHash),
	}

	t.Run("success_issues_session_token", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		sessions := mocks.NewMockSessionCreator(t)
		lastLogin := mocks.NewMockUserLastLoginUpdater(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "some@example.com").
			Return(user, nil)

		var storedTokenHash string
		sessions.EXPECT().
			CreateSession(mock.Anything, mock.Anything, int64(42), mock.Anything, mock.Anything).
			Run(func(_ context.Context, sessionID string, _ int64, tokenHash string, expiresAt time.Time) {
				assert.NotEmpty(t, sessionID)
				assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
				storedTokenHash = tokenHash
			}).
			Return(nil)

		lastLogin.EXPECT().
			UpdateUserLastLogin(mock.Anything, int64(42)).
			Return(nil)

		cmd := NewLoginUser(getter, sessions, lastLogin, time.Hour)

		res, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "some@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(res.Token, SessionTokenPrefix))
		assert.Equal(t, user, res.User)

		// The stored hash must match the issued token.
		hash := sha256.Sum256([]byte(res.Token))
		assert.Equal(t, hex.EncodeToString(hash[:]), storedTokenHash)
	})

	t.Run("unknown_email_rejected", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		sessions := mocks.NewMockSessionCreator(t)
		lastLogin := mocks.NewMockUserLastLoginUpdater(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "nobody@example.com").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := NewLoginUser(getter, sessions, lastLogin, time.Hour)

		_, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong_password_rejected", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		sessions := mocks.NewMockSessionCreator(t)
		lastLogin := mocks.NewMockUserLastLoginUpdater(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "some@example.com").
			Return(user, nil)

		cmd := NewLoginUser(getter, sessions, lastLogin, time.Hour)

		_, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "some@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("session_create_error_propagated", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		sessions := mocks.NewMockSessionCreator(t)
		lastLogin := mocks.NewMockUserLastLoginUpdater(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "some@example.com").
			Return(user, nil)

		sessions.EXPECT().
			CreateSession(mock.Anything, mock.Anything, int64(42), mock.Anything, mock.Anything).
			Return(errors.New("database error"))

		cmd := NewLoginUser(getter, sessions, lastLogin, time.Hour)

		_, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "some@example.com",
			Password: "hunter22",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("last_login_failure_does_not_fail_login", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		sessions := mocks.NewMockSessionCreator(t)
		lastLogin := mocks.NewMockUserLastLoginUpdater(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "some@example.com").
			Return(user, nil)

		sessions.EXPECT().
			CreateSession(mock.Anything, mock.Anything, int64(42), mock.Anything, mock.Anything).
			Return(nil)

		lastLogin.EXPECT().
			UpdateUserLastLogin(mock.Anything, int64(42)).
			Return(errors.New("database error"))

		cmd := NewLoginUser(getter, sessions, lastLogin, time.Hour)

		res, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "some@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})
}
