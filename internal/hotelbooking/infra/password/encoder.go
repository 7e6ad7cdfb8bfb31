package password

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/encoding"
	"github.com/stayforge/hotel-booking-service/pkg/worker"
)

const DefaultHashCost = 12

type encoder struct {
	cost int
	pool worker.Pool
}

// NewBcryptEncoder hashes on a shared worker pool so that concurrent
// registrations don't saturate every CPU with bcrypt rounds.
func NewBcryptEncoder(cost int, pool worker.Pool) encoding.PasswordEncoder {
	return &encoder{
		cost: cost,
		pool: pool,
	}
}

func (e *encoder) Hash(ctx context.Context, password string) (string, error) {
	type hashResult struct {
		hash []byte
		err  error
	}

	resultChan := make(chan hashResult, 1)
	e.pool.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
		resultChan <- hashResult{hash: hash, err: err}
	})

	select {
	case result := <-resultChan:
		if result.err != nil {
			return "", fmt.Errorf("generate password hash: %w", result.err)
		}
		return string(result.hash), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (e *encoder) Compare(ctx context.Context, hash, password string) (bool, error) {
	resultChan := make(chan error, 1)
	e.pool.Do(func() {
		resultChan <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	})

	select {
	case err := <-resultChan:
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("compare password hash: %w", err)
		}
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
