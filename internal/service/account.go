package service

import (
	"context"
	"errors"
	"strings"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, authentication, and password changes
type AccountService struct {
	users  repository.UserRepository
	policy PasswordPolicy
}

// NewAccountService creates a new AccountService
func NewAccountService(users repository.UserRepository, policy PasswordPolicy) *AccountService {
	return &AccountService{users: users, policy: policy}
}

// Register creates a new account after confirming the password matches its
// confirmation and satisfies the strength policy. The stored credential is
// a bcrypt hash; the plaintext never leaves this method.
func (s *AccountService) Register(ctx context.Context, username, email, password, confirmation string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "username and email are required",
		}
	}

	if err := s.checkNewPassword(password, confirmation, username, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to hash password",
			Err:     err,
		}
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapRepositoryError(err, "account")
	}

	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, mapRepositoryError(err, "account")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, invalidCredentials()
	}

	return user, nil
}

// ChangePassword verifies the old password, applies the strength and
// confirmation checks to the new one, then rehashes and persists it.
func (s *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmation string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err, "account")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return &ServiceError{
			Code:    ErrCodeWrongOldPassword,
			Message: "old password is incorrect",
		}
	}

	if err := s.checkNewPassword(newPassword, confirmation, user.Username, user.Email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to hash password",
			Err:     err,
		}
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return mapRepositoryError(err, "account")
	}

	return nil
}

// checkNewPassword enforces confirmation match first, then the strength policy
func (s *AccountService) checkNewPassword(password, confirmation, username, email string) error {
	if password != confirmation {
		return &ServiceError{
			Code:    ErrCodePasswordMismatch,
			Message: "password and confirmation do not match",
		}
	}

	if err := s.policy.Validate(password, username, email); err != nil {
		return &ServiceError{
			Code:    ErrCodeWeakPassword,
			Message: err.Error(),
		}
	}

	return nil
}

func invalidCredentials() error {
	return &ServiceError{
		Code:    ErrCodeInvalidCredentials,
		Message: "invalid credentials",
	}
}
