package service

import (
	"context"
	"testing"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*models.User)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.NotEqual(t, "correct horse battery", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte("correct horse battery")))
			}).
			Return(nil)

		user, err := svc.Register(ctx, "alice", "alice@example.com", "correct horse battery", "correct horse battery")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("trims username and email", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*models.User)
				assert.Equal(t, "bob", user.Username)
				assert.Equal(t, "bob@example.com", user.Email)
			}).
			Return(nil)

		_, err := svc.Register(ctx, "  bob  ", " bob@example.com ", "sturdy passphrase", "sturdy passphrase")

		require.NoError(t, err)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		tests := []struct {
			name         string
			username     string
			email        string
			password     string
			confirmation string
			wantCode     string
		}{
			{"missing username", "", "a@b.com", "sturdy passphrase", "sturdy passphrase", ErrCodeValidation},
			{"missing email", "alice", "", "sturdy passphrase", "sturdy passphrase", ErrCodeValidation},
			{"mismatch checked before strength", "alice", "a@b.com", "short", "different", ErrCodePasswordMismatch},
			{"too short", "alice", "a@b.com", "short", "short", ErrCodeWeakPassword},
			{"purely numeric", "alice", "a@b.com", "8675309112358", "8675309112358", ErrCodeWeakPassword},
			{"too common", "alice", "a@b.com", "Password123", "Password123", ErrCodeWeakPassword},
			{"contains username", "alice", "a@b.com", "myaliceword1", "myaliceword1", ErrCodeWeakPassword},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUsers := mocks.NewMockUserRepository(t)
				svc := NewAccountService(mockUsers, testPolicy())

				_, err := svc.Register(ctx, tt.username, tt.email, tt.password, tt.confirmation)

				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, tt.wantCode, svcErr.Code)
			})
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(models.ErrDuplicate)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "sturdy passphrase", "sturdy passphrase")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConflict, svcErr.Code)
	})
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		stored := &models.User{
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: hashPassword(t, "sturdy passphrase"),
		}
		mockUsers.On("FindByUsername", ctx, "alice").Return(stored, nil)

		user, err := svc.Authenticate(ctx, "alice", "sturdy passphrase")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		stored := &models.User{
			Username:     "alice",
			PasswordHash: hashPassword(t, "sturdy passphrase"),
		}
		mockUsers.On("FindByUsername", ctx, "alice").Return(stored, nil)

		_, err := svc.Authenticate(ctx, "alice", "guess")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidCredentials, svcErr.Code)
	})

	t.Run("unknown username looks like a wrong password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByUsername", ctx, "mallory").Return(nil, models.ErrNotFound)

		_, err := svc.Authenticate(ctx, "mallory", "anything")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidCredentials, svcErr.Code)
	})
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	storedUser := func(t *testing.T) *models.User {
		return &models.User{
			ID:           userID,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: hashPassword(t, "old passphrase"),
		}
	}

	t.Run("rehashes and persists", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByID", ctx, userID).Return(storedUser(t), nil)
		mockUsers.On("UpdatePasswordHash", ctx, userID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new passphrase")) == nil
		})).Return(nil)

		err := svc.ChangePassword(ctx, userID, "old passphrase", "new passphrase", "new passphrase")

		require.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByID", ctx, userID).Return(storedUser(t), nil)

		err := svc.ChangePassword(ctx, userID, "not the old one", "new passphrase", "new passphrase")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeWrongOldPassword, svcErr.Code)
	})

	t.Run("old password checked before the new one", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByID", ctx, userID).Return(storedUser(t), nil)

		err := svc.ChangePassword(ctx, userID, "wrong", "weak", "mismatched")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeWrongOldPassword, svcErr.Code)
	})

	t.Run("weak replacement rejected", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByID", ctx, userID).Return(storedUser(t), nil)

		err := svc.ChangePassword(ctx, userID, "old passphrase", "1234567890", "1234567890")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeWeakPassword, svcErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := NewAccountService(mockUsers, testPolicy())

		mockUsers.On("FindByID", ctx, userID).Return(nil, models.ErrNotFound)

		err := svc.ChangePassword(ctx, userID, "old passphrase", "new passphrase", "new passphrase")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeNotFound, svcErr.Code)
	})
}
