package http

import (
	"net/http"
	"sort"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type HealthReadyHandler struct {
	healthService service.Health
}

func NewHealthReadyHandler(healthService service.Health) HealthReadyHandler {
	return HealthReadyHandler{healthService: healthService}
}

func (h HealthReadyHandler) Method() string {
	return http.MethodGet
}

func (h HealthReadyHandler) Path() string {
	return "/health/ready"
}

func (h HealthReadyHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	report := h.healthService.Check(r.Context())

	status := service.HealthStatusOK
	httpCode := http.StatusOK
	if !report.Ready() {
		status = service.HealthStatusUnavailable
		httpCode = http.StatusServiceUnavailable
	}

	services := make([]healthServiceOut, 0, len(report.Components))
	for name, componentStatus := range report.Components {
		services = append(services, healthServiceOut{Name: name, Status: componentStatus})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	w.SetStatusCode(httpCode).SetJSONBody(healthReadyOut{
		Status:   status,
		Services: services,
	})
	return nil
}

type (
	healthReadyOut struct {
		Status   string             `json:"status"`
		Services []healthServiceOut `json:"services"`
	}

	healthServiceOut struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
)
