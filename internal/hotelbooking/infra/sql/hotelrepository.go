package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkgsql "github.com/stayforge/hotel-booking-service/pkg/sql"
)

var hotelColumns = []string{
	"id", "name", "description", "address", "city", "country",
	"rating", "total_reviews", "created_at", "updated_at",
}

type hotelRepository struct {
	db pkgsql.Client
}

func NewHotelRepository(db pkgsql.Client) domain.HotelRepository {
	return hotelRepository{db: db}
}

func (r hotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	query, args, err := sq.
		Select(hotelColumns...).
		From("hotels").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxHotel
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	hotels := make([]domain.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, row.toDomain())
	}
	return hotels, nil
}

func (r hotelRepository) FindByID(ctx context.Context, id int64) (domain.Hotel, error) {
	query, args, err := sq.
		Select(hotelColumns...).
		From("hotels").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxHotel
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}

	return row.toDomain(), nil
}

func (r hotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	query, args, err := sq.
		Insert("hotels").
		Columns("name", "description", "address", "city", "country", "rating", "total_reviews").
		Values(hotel.Name, hotel.Description, hotel.Address, hotel.City, hotel.Country, hotel.Rating, hotel.TotalReviews).
		Suffix(returningClause(hotelColumns)).
		ToSql()
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxHotel
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		return domain.Hotel{}, err
	}

	return row.toDomain(), nil
}

func (r hotelRepository) Update(ctx context.Context, id int64, changes domain.HotelChanges) (domain.Hotel, error) {
	qb := sq.Update("hotels")
	if changes.Name.Present {
		qb = qb.Set("name", changes.Name.Value)
	}
	if changes.Description.Present {
		qb = qb.Set("description", changes.Description.Value)
	}
	if changes.Address.Present {
		qb = qb.Set("address", changes.Address.Value)
	}
	if changes.City.Present {
		qb = qb.Set("city", changes.City.Value)
	}
	if changes.Country.Present {
		qb = qb.Set("country", changes.Country.Value)
	}
	if changes.Rating.Present {
		qb = qb.Set("rating", changes.Rating.Value)
	}
	if changes.TotalReviews.Present {
		qb = qb.Set("total_reviews", changes.TotalReviews.Value)
	}

	query, args, err := qb.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningClause(hotelColumns)).
		ToSql()
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("build query: %w", err)
	}

	var row sqlxHotel
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}

	return row.toDomain(), nil
}

func (r hotelRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.
		Delete("hotels").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrHotelNotFound
	}

	return nil
}

func returningClause(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

type sqlxHotel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Description  *string   `db:"description"`
	Address      string    `db:"address"`
	City         string    `db:"city"`
	Country      string    `db:"country"`
	Rating       *float64  `db:"rating"`
	TotalReviews *int      `db:"total_reviews"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (h sqlxHotel) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:           h.ID,
		Name:         h.Name,
		Description:  h.Description,
		Address:      h.Address,
		City:         h.City,
		Country:      h.Country,
		Rating:       h.Rating,
		TotalReviews: h.TotalReviews,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}
