package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type GetProfileHandler struct {
	profileService service.Profile
}

func NewGetProfileHandler(profileService service.Profile) GetProfileHandler {
	return GetProfileHandler{profileService: profileService}
}

func (h GetProfileHandler) Method() string {
	return http.MethodGet
}

func (h GetProfileHandler) Path() string {
	return "/auth/profile"
}

func (h GetProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := getAuthenticatedUser(r)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(r.Context(), principal.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(pkghttp.ErrorMessage("User not found"))
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPUser(user))
	return nil
}
