package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

type UpdateHotelHandler struct {
	hotelService service.Hotel
}

func NewUpdateHotelHandler(hotelService service.Hotel) UpdateHotelHandler {
	return UpdateHotelHandler{hotelService: hotelService}
}

func (h UpdateHotelHandler) Method() string {
	return http.MethodPut
}

func (h UpdateHotelHandler) Path() string {
	return "/hotels/{hotelID}"
}

func (h UpdateHotelHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	hotelID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("hotelID"), err)
	if err != nil {
		return err
	}

	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateHotelIn](), err)
	if err != nil {
		w.SetStatusCode(http.StatusUnprocessableEntity).SetJSONBody(pkghttp.ErrorMessage("Invalid request body"))
		return err
	}

	hotel, err := h.hotelService.Update(r.Context(), hotelID, domain.HotelChanges{
		Name:         in.Name,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		Rating:       in.Rating,
		TotalReviews: in.TotalReviews,
	})
	if errors.Is(err, domain.ErrHotelNotFound) {
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(pkghttp.ErrorMessage("Hotel not found"))
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPHotel(hotel))
	return nil
}

type updateHotelIn struct {
	Name         optional.Optional[string]   `json:"name"`
	Description  optional.Optional[*string]  `json:"description"`
	Address      optional.Optional[string]   `json:"address"`
	City         optional.Optional[string]   `json:"city"`
	Country      optional.Optional[string]   `json:"country"`
	Rating       optional.Optional[*float64] `json:"rating"`
	TotalReviews optional.Optional[*int]     `json:"total_reviews"`
}
