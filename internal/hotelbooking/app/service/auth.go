package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/encoding"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/token"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
)

const minPasswordLength = 6

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailAlreadyTaken  = domain.ErrEmailAlreadyTaken
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	Auth interface {
		Register(ctx context.Context, email, password, firstName, lastName string) (AuthenticatedUser, error)
		Login(ctx context.Context, email, password string) (AuthenticatedUser, error)
	}

	AuthenticatedUser struct {
		User  domain.User
		Token string
	}

	authService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		tokenCodec      token.Codec
	}
)

func NewAuth(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
	tokenCodec token.Codec,
) Auth {
	return &authService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		tokenCodec:      tokenCodec,
	}
}

func (s authService) Register(ctx context.Context, email, password, firstName, lastName string) (AuthenticatedUser, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return AuthenticatedUser{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return AuthenticatedUser{}, ErrPasswordTooShort
	}

	passwordHash, err := s.passwordEncoder.Hash(ctx, password)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, domain.NewUser(email, passwordHash, firstName, lastName))
	if errors.Is(err, domain.ErrEmailAlreadyTaken) {
		return AuthenticatedUser{}, domain.ErrEmailAlreadyTaken
	}
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("create user: %w", err)
	}

	return s.authenticate(user)
}

// Login reports the same failure for an unknown email and a wrong password.
func (s authService) Login(ctx context.Context, email, password string) (AuthenticatedUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return AuthenticatedUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("find user by email: %w", err)
	}

	matched, err := s.passwordEncoder.Compare(ctx, user.PasswordHash, password)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("compare password: %w", err)
	}
	if !matched {
		return AuthenticatedUser{}, ErrInvalidCredentials
	}

	return s.authenticate(user)
}

func (s authService) authenticate(user domain.User) (AuthenticatedUser, error) {
	tokenValue, _, err := s.tokenCodec.Issue(user.ID, user.Email)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthenticatedUser{
		User:  user,
		Token: tokenValue,
	}, nil
}
