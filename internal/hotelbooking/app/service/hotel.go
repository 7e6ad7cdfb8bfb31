package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
)

type (
	Hotel interface {
		List(ctx context.Context) ([]domain.Hotel, error)
		Get(ctx context.Context, id int64) (domain.Hotel, error)
		Create(ctx context.Context, data HotelData) (domain.Hotel, error)
		Update(ctx context.Context, id int64, changes domain.HotelChanges) (domain.Hotel, error)
		Delete(ctx context.Context, id int64) error
	}

	HotelData struct {
		Name         string
		Description  *string
		Address      string
		City         string
		Country      string
		Rating       *float64
		TotalReviews *int
	}

	hotelService struct {
		hotelRepo domain.HotelRepository
	}
)

func NewHotel(hotelRepo domain.HotelRepository) Hotel {
	return &hotelService{hotelRepo: hotelRepo}
}

func (s hotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	return hotels, nil
}

func (s hotelService) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrHotelNotFound) {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("find hotel by id: %w", err)
	}

	return hotel, nil
}

func (s hotelService) Create(ctx context.Context, data HotelData) (domain.Hotel, error) {
	hotel, err := s.hotelRepo.Create(ctx, domain.NewHotel(
		data.Name,
		data.Description,
		data.Address,
		data.City,
		data.Country,
		data.Rating,
		data.TotalReviews,
	))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("create hotel: %w", err)
	}

	return hotel, nil
}

func (s hotelService) Update(ctx context.Context, id int64, changes domain.HotelChanges) (domain.Hotel, error) {
	if changes.Empty() {
		return s.Get(ctx, id)
	}

	hotel, err := s.hotelRepo.Update(ctx, id, changes)
	if errors.Is(err, domain.ErrHotelNotFound) {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("update hotel: %w", err)
	}

	return hotel, nil
}

func (s hotelService) Delete(ctx context.Context, id int64) error {
	err := s.hotelRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrHotelNotFound) {
		return domain.ErrHotelNotFound
	}
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	return nil
}
