package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

type LoginHandler struct {
	authService service.Auth
}

func NewLoginHandler(authService service.Auth) LoginHandler {
	return LoginHandler{authService: authService}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/auth/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), err)
	if err != nil {
		return err
	}

	result, err := h.authService.Login(r.Context(), in.Email, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(pkghttp.ErrorMessage("Invalid email or password"))
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPAuthenticatedUser(result))
	return nil
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
