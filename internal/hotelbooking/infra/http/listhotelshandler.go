package http

import (
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type ListHotelsHandler struct {
	hotelService service.Hotel
}

func NewListHotelsHandler(hotelService service.Hotel) ListHotelsHandler {
	return ListHotelsHandler{hotelService: hotelService}
}

func (h ListHotelsHandler) Method() string {
	return http.MethodGet
}

func (h ListHotelsHandler) Path() string {
	return "/hotels"
}

func (h ListHotelsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	hotels, err := h.hotelService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPHotels(hotels))
	return nil
}
