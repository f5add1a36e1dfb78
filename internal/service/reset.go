package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/benx421/catalog/internal/mail"
	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ResetService drives the password-reset-by-OTP state machine:
// request issues a code, verify re-checks it statelessly, reset consumes it.
type ResetService struct {
	users  repository.UserRepository
	resets repository.PasswordResetRepository
	sender mail.Sender
	policy PasswordPolicy
	logger *slog.Logger
}

// NewResetService creates a new ResetService
func NewResetService(
	users repository.UserRepository,
	resets repository.PasswordResetRepository,
	sender mail.Sender,
	policy PasswordPolicy,
	logger *slog.Logger,
) *ResetService {
	return &ResetService{
		users:  users,
		resets: resets,
		sender: sender,
		policy: policy,
		logger: logger,
	}
}

// RequestReset issues a fresh 6-digit code to the account behind the email
// and mails it. Earlier outstanding codes for the account stay valid; a
// failed delivery surfaces as a domain error, not a server fault.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to generate reset code",
			Err:     err,
		}
	}

	reset := &models.PasswordReset{
		UserID: user.ID,
		Code:   code,
	}

	if err := s.resets.Create(ctx, reset); err != nil {
		return mapRepositoryError(err, "password reset")
	}

	if err := s.sender.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		s.logger.Error("failed to deliver reset code", "email", user.Email, "error", err)
		return &ServiceError{
			Code:    ErrCodeDeliveryFailed,
			Message: "failed to deliver reset code",
			Err:     err,
		}
	}

	return nil
}

// VerifyCode checks that the newest unconsumed code for the account matches
// exactly. It persists nothing: verification is a stateless re-check, and
// only the final reset step consumes a code.
func (s *ResetService) VerifyCode(ctx context.Context, email, code string) error {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.resets.FindNewestUnconsumed(ctx, user.ID, code); err != nil {
		return invalidResetCode(err)
	}

	return nil
}

// ResetPassword repeats the code lookup, applies the confirmation and
// strength checks, stores the new hash, and consumes exactly the matched
// code. Other outstanding codes for the account remain usable.
func (s *ResetService) ResetPassword(ctx context.Context, email, code, newPassword, confirmation string) error {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	reset, err := s.resets.FindNewestUnconsumed(ctx, user.ID, code)
	if err != nil {
		return invalidResetCode(err)
	}

	if newPassword != confirmation {
		return &ServiceError{
			Code:    ErrCodePasswordMismatch,
			Message: "password and confirmation do not match",
		}
	}

	if err := s.policy.Validate(newPassword, user.Username, user.Email); err != nil {
		return &ServiceError{
			Code:    ErrCodeWeakPassword,
			Message: err.Error(),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to hash password",
			Err:     err,
		}
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return mapRepositoryError(err, "account")
	}

	// The guarded update makes the code single-use even when two resets
	// race on the same row.
	if err := s.resets.MarkConsumed(ctx, reset.ID); err != nil {
		return invalidResetCode(err)
	}

	return nil
}

func (s *ResetService) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeUnknownEmail,
				Message: "no account matches that email",
			}
		}
		return nil, mapRepositoryError(err, "account")
	}

	return user, nil
}

func invalidResetCode(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeInvalidCode,
			Message: "invalid or already used reset code",
		}
	}
	return mapRepositoryError(err, "password reset")
}

// generateResetCode draws a uniformly random 6-digit code. Leading zeros
// are preserved by formatting as text.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
