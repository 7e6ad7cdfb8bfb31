package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
)

type (
	Profile interface {
		Get(ctx context.Context, userID int64) (domain.User, error)
		Update(ctx context.Context, userID int64, changes domain.ProfileChanges) (domain.User, error)
	}

	profileService struct {
		userRepo domain.UserRepository
	}
)

func NewProfile(userRepo domain.UserRepository) Profile {
	return &profileService{userRepo: userRepo}
}

func (s profileService) Get(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user by id: %w", err)
	}

	return user, nil
}

func (s profileService) Update(ctx context.Context, userID int64, changes domain.ProfileChanges) (domain.User, error) {
	if changes.Empty() {
		return s.Get(ctx, userID)
	}

	user, err := s.userRepo.Update(ctx, userID, changes)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("update user profile: %w", err)
	}

	return user, nil
}
