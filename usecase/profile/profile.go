package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/wallclock"
	"github.com/healthcare24/backend/repository"
	"github.com/healthcare24/backend/usecase/auth"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// UpdateInput covers the self-service profile fields. Role and email are
// fixed after provisioning.
type UpdateInput struct {
	Name     *string
	Phone    *string
	Timezone *string
}

func (uc *UseCase) Update(ctx context.Context, userID string, input UpdateInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "name is required")
		}
		user.Name = name
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Timezone != nil {
		if *input.Timezone != "" {
			if _, err := wallclock.Location(*input.Timezone); err != nil {
				return nil, domain.NewError(domain.ErrCodeInvalid, "unknown timezone")
			}
		}
		user.Timezone = *input.Timezone
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before replacing it.
func (uc *UseCase) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.NewError(domain.ErrCodeUnauthorized, "current password is incorrect")
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	uc.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}
