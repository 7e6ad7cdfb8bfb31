package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type CreateHotelHandler struct {
	hotelService service.Hotel
}

func NewCreateHotelHandler(hotelService service.Hotel) CreateHotelHandler {
	return CreateHotelHandler{hotelService: hotelService}
}

func (h CreateHotelHandler) Method() string {
	return http.MethodPost
}

func (h CreateHotelHandler) Path() string {
	return "/hotels"
}

func (h CreateHotelHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[createHotelIn](), err)
	if err != nil {
		w.SetStatusCode(http.StatusUnprocessableEntity).SetJSONBody(pkghttp.ErrorMessage("Invalid request body"))
		return err
	}
	if in.Name == nil || in.Address == nil || in.City == nil || in.Country == nil {
		w.SetStatusCode(http.StatusUnprocessableEntity).SetJSONBody(pkghttp.ErrorMessage("Invalid request body"))
		return errors.New("required hotel field is missing")
	}

	hotel, err := h.hotelService.Create(r.Context(), service.HotelData{
		Name:         *in.Name,
		Description:  in.Description,
		Address:      *in.Address,
		City:         *in.City,
		Country:      *in.Country,
		Rating:       in.Rating,
		TotalReviews: in.TotalReviews,
	})
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(toHTTPHotel(hotel))
	return nil
}

type createHotelIn struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Country      *string  `json:"country"`
	Rating       *float64 `json:"rating"`
	TotalReviews *int     `json:"total_reviews"`
}
