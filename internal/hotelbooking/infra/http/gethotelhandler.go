package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type GetHotelHandler struct {
	hotelService service.Hotel
}

func NewGetHotelHandler(hotelService service.Hotel) GetHotelHandler {
	return GetHotelHandler{hotelService: hotelService}
}

func (h GetHotelHandler) Method() string {
	return http.MethodGet
}

func (h GetHotelHandler) Path() string {
	return "/hotels/{hotelID}"
}

func (h GetHotelHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	hotelID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("hotelID"), err)
	if err != nil {
		return err
	}

	hotel, err := h.hotelService.Get(r.Context(), hotelID)
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
