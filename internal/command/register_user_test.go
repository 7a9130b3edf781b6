package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestRegisterUser_Execute(t *testing.T) {
	t.Run("success_stores_bcrypt_hash", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		creator := mocks.NewMockUserCreator(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "new@example.com").
			Return(domain.User{}, domain.ErrNotFound)

		creator.EXPECT().
			CreateUser(mock.Anything, "newuser", "new@example.com", mock.Anything).
			Run(func(_ context.Context, _ string, _ string, passwordHash string) {
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(passwordHash), []byte("hunter22"),
				))
			}).
			Return(42, nil)

		cmd := NewRegisterUser(getter, creator)

		userID, err := cmd.Execute(context.Background(), RegisterUserRequest{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		creator := mocks.NewMockUserCreator(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "taken@example.com").
			Return(domain.User{ID: 1, Email: "taken@example.com"}, nil)

		cmd := NewRegisterUser(getter, creator)

		_, err := cmd.Execute(context.Background(), RegisterUserRequest{
			Username: "newuser",
			Email:    "taken@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("lookup_error_propagated", func(t *testing.T) {
		getter := mocks.NewMockUserByEmailGetter(t)
		creator := mocks.NewMockUserCreator(t)

		getter.EXPECT().
			GetUserByEmail(mock.Anything, "new@example.com").
			Return(domain.User{}, errors.New("database error"))

		cmd := NewRegisterUser(getter, creator)

		_, err := cmd.Execute(context.Background(), RegisterUserRequest{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "hunter22",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}
