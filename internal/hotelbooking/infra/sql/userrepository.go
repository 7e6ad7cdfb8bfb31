package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkgsql "github.com/stayforge/hotel-booking-service/pkg/sql"
)

const pqUniqueViolationCode = "23505"

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

type userRepository struct {
	db pkgsql.Client
}

func NewUserRepository(db pkgsql.Client) domain.UserRepository {
	return userRepository{db: db}
}

func (r userRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := sq.
		Insert("users").
		Columns("email", "password_hash", "first_name", "last_name").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName).
		Suffix(returningClause(userColumns)).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if isUniqueViolation(err) {
		return domain.User{}, domain.ErrEmailAlreadyTaken
	}
	if err != nil {
		return domain.User{}, err
	}

	return row.toDomain(), nil
}

func (r userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r userRepository) Update(ctx context.Context, id int64, changes domain.ProfileChanges) (domain.User, error) {
	qb := sq.Update("users")
	if changes.FirstName.Present {
		qb = qb.Set("first_name", changes.FirstName.Value)
	}
	if changes.LastName.Present {
		qb = qb.Set("last_name", changes.LastName.Value)
	}

	query, args, err := qb.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningClause(userColumns)).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return row.toDomain(), nil
}

func (r userRepository) findOne(ctx context.Context, where sq.Eq) (domain.User, error) {
	query, args, err := sq.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return row.toDomain(), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolationCode
}

type sqlxUser struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u sqlxUser) toDomain() domain.User {
	return domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
