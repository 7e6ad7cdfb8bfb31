package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type DeleteHotelHandler struct {
	hotelService service.Hotel
}

func NewDeleteHotelHandler(hotelService service.Hotel) DeleteHotelHandler {
	return DeleteHotelHandler{hotelService: hotelService}
}

func (h DeleteHotelHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteHotelHandler) Path() string {
	return "/hotels/{hotelID}"
}

func (h DeleteHotelHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	hotelID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("hotelID"), err)
	if err != nil {
		return err
	}

	err = h.hotelService.Delete(r.Context(), hotelID)
	if errors.Is(err, domain.ErrHotelNotFound) {
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(pkghttp.ErrorMessage("Hotel not found"))
		return err
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
