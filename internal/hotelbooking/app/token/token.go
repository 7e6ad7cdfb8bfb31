package token

import (
	"errors"
	"time"
)

// ErrInvalidToken covers every decode failure: malformed, tampered,
// wrongly signed and expired tokens are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Codec interface {
	Issue(userID int64, email string) (string, Claims, error)
	Decode(token string) (Claims, error)
}
