package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidToken is the single failure kind for every token validation
	// problem: bad signature, malformed encoding, unsupported algorithm and
	// natural expiry all collapse into it.
	ErrInvalidToken = errors.New("token is invalid or expired")
)

type (
	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Token interface {
		Type() PrincipalType
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	PrincipalType string
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
