//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "HotelRepository=HotelRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

var ErrHotelNotFound = errors.New("hotel not found")

type Hotel struct {
	ID           int64
	Name         string
	Description  *string
	Address      string
	City         string
	Country      string
	Rating       *float64
	TotalReviews *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewHotel(name string, description *string, address, city, country string, rating *float64, totalReviews *int) Hotel {
	return Hotel{
		Name:         name,
		Description:  description,
		Address:      address,
		City:         city,
		Country:      country,
		Rating:       rating,
		TotalReviews: totalReviews,
	}
}

// HotelChanges distinguishes an absent field from an explicit null:
// Description present with a nil value clears the stored description.
type HotelChanges struct {
	Name         optional.Optional[string]
	Description  optional.Optional[*string]
	Address      optional.Optional[string]
	City         optional.Optional[string]
	Country      optional.Optional[string]
	Rating       optional.Optional[*float64]
	TotalReviews optional.Optional[*int]
}

func (c HotelChanges) Empty() bool {
	return !c.Name.Present &&
		!c.Description.Present &&
		!c.Address.Present &&
		!c.City.Present &&
		!c.Country.Present &&
		!c.Rating.Present &&
		!c.TotalReviews.Present
}

type HotelRepository interface {
	List(ctx context.Context) ([]Hotel, error)
	FindByID(ctx context.Context, id int64) (Hotel, error)
	Create(ctx context.Context, hotel Hotel) (Hotel, error)
	Update(ctx context.Context, id int64, changes HotelChanges) (Hotel, error)
	Delete(ctx context.Context, id int64) error
}
