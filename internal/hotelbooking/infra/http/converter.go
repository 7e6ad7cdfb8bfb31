package http

import (
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
)

type (
	userOut struct {
		ID        int64  `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	authenticatedUserOut struct {
		User  userOut `json:"user"`
		Token string  `json:"token"`
	}

	hotelOut struct {
		ID           int64    `json:"id"`
		Name         string   `json:"name"`
		Description  *string  `json:"description"`
		Address      string   `json:"address"`
		City         string   `json:"city"`
		Country      string   `json:"country"`
		Rating       *float64 `json:"rating"`
		TotalReviews *int     `json:"total_reviews"`
	}
)

func toHTTPUser(user domain.User) userOut {
	return userOut{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toHTTPAuthenticatedUser(data service.AuthenticatedUser) authenticatedUserOut {
	return authenticatedUserOut{
		User:  toHTTPUser(data.User),
		Token: data.Token,
	}
}

func toHTTPHotel(hotel domain.Hotel) hotelOut {
	return hotelOut{
		ID:           hotel.ID,
		Name:         hotel.Name,
		Description:  hotel.Description,
		Address:      hotel.Address,
		City:         hotel.City,
		Country:      hotel.Country,
		Rating:       hotel.Rating,
		TotalReviews: hotel.TotalReviews,
	}
}

func toHTTPHotels(hotels []domain.Hotel) []hotelOut {
	result := make([]hotelOut, 0, len(hotels))
	for _, hotel := range hotels {
		result = append(result, toHTTPHotel(hotel))
	}
	return result
}
