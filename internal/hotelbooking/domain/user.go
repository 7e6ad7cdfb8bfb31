//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyTaken = errors.New("user email already taken")
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(email, passwordHash, firstName, lastName string) User {
	return User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
}

// ProfileChanges carries only the fields present in an update request,
// absent fields keep their stored values.
type ProfileChanges struct {
	FirstName optional.Optional[string]
	LastName  optional.Optional[string]
}

func (c ProfileChanges) Empty() bool {
	return !c.FirstName.Present && !c.LastName.Present
}

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, id int64, changes ProfileChanges) (User, error)
}
