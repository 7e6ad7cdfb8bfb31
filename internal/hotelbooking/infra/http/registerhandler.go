package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type RegisterHandler struct {
	authService service.Auth
}

func NewRegisterHandler(authService service.Auth) RegisterHandler {
	return RegisterHandler{authService: authService}
}

func (h RegisterHandler) Method() string {
	return http.MethodPost
}

func (h RegisterHandler) Path() string {
	return "/auth/register"
}

func (h RegisterHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[registerIn](), err)
	if err != nil {
		return err
	}

	result, err := h.authService.Register(r.Context(), in.Email, in.Password, in.FirstName, in.LastName)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(pkghttp.ErrorMessage("Invalid email format"))
		return err
	case errors.Is(err, service.ErrPasswordTooShort):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(pkghttp.ErrorMessage("Password must be at least 6 characters"))
		return err
	case errors.Is(err, service.ErrEmailAlreadyTaken):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(pkghttp.ErrorMessage("Email already exists"))
		return err
	case err != nil:
		return err
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(toHTTPAuthenticatedUser(result))
	return nil
}

type registerIn struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
