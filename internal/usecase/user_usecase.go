package usecase

import (
	"context"
	"strings"
	"time"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type ProfileInput struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// EnsureProfile bootstraps a profile row the first time an authenticated UID
// is seen. Existing profiles are returned as-is. When the email already has a
// profile under a different UID the account was re-registered at the auth
// provider, so the chosen username carries over to the new row.
func (uc *UserUseCase) EnsureProfile(ctx context.Context, uid, email, username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if username == "" && email != "" {
		prior, err := uc.userRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			username = prior.Username
			logger.Info("Email %s re-registered under new uid %s, keeping username %s", email, uid, prior.Username)
		case !errors.Is(err, "NOT_FOUND"):
			return nil, err
		}
	}

	if username == "" {
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		}
	}

	now := time.Now()
	user = &entity.User{
		ID:        uid,
		Username:  username,
		Email:     email,
		Role:      entity.RoleCustomer,
		Status:    entity.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created profile for new user %s", uid)
	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input ProfileInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, errors.Validation("username is required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.FullName = input.FullName
	user.Bio = input.Bio
	user.Phone = input.Phone
	user.City = input.City
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return false, err
	}
	return user.Role == entity.RoleAdmin, nil
}
