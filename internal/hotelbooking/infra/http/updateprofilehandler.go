package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

type UpdateProfileHandler struct {
	profileService service.Profile
}

func NewUpdateProfileHandler(profileService service.Profile) UpdateProfileHandler {
	return UpdateProfileHandler{profileService: profileService}
}

func (h UpdateProfileHandler) Method() string {
	return http.MethodPut
}

func (h UpdateProfileHandler) Path() string {
	return "/auth/profile"
}

func (h UpdateProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	principal, err := getAuthenticatedUser(r)
	if err != nil {
		return err
	}

	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateProfileIn](), err)
	if err != nil {
		return err
	}

	user, err := h.profileService.Update(r.Context(), principal.UserID, domain.ProfileChanges{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
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

type updateProfileIn struct {
	FirstName optional.Optional[string] `json:"first_name"`
	LastName  optional.Optional[string] `json:"last_name"`
}
