package http

import (
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type HealthLiveHandler struct{}

func NewHealthLiveHandler() HealthLiveHandler {
	return HealthLiveHandler{}
}

func (h HealthLiveHandler) Method() string {
	return http.MethodGet
}

func (h HealthLiveHandler) Path() string {
	return "/health/live"
}

func (h HealthLiveHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetJSONBody(healthLiveOut{Status: service.HealthStatusOK})
	return nil
}

type healthLiveOut struct {
	Status string `json:"status"`
}
