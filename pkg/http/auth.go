package http

import (
	"errors"
	"net/http"

	"github.com/stayforge/hotel-booking-service/pkg/auth"
)

const (
	messageMissingAuthToken = "Missing authorization token"
	messageInvalidAuthToken = "Invalid token"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

// WithAuth resolves the request identity: without a token the request
// continues anonymously, with a token that fails validation the request
// continues anonymously and the failure is recorded for
// WithAuthenticationRequirement to report.
func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Auth[T]{}))
				handler.ServeHTTP(w, r)
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrInvalidToken) {
				getHandlerMetadata(r.Context()).AuthFailure = auth.ErrInvalidToken
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Auth[T]{}))
				handler.ServeHTTP(w, r)
				return
			}
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			r = r.WithContext(auth.WithAuthentication(r.Context(), authData))
			handler.ServeHTTP(w, r)
		})
	})
}

// WithAuthenticationRequirement guards protected routes. The wrapped handler
// never runs for an unauthenticated request: 401 with a fixed message telling
// a missing token apart from an invalid one, and nothing more.
func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.IsAuthenticated(r.Context()) {
				handler.ServeHTTP(w, r)
				return
			}

			message := messageMissingAuthToken
			if errors.Is(getHandlerMetadata(r.Context()).AuthFailure, auth.ErrInvalidToken) {
				message = messageInvalidAuthToken
			}

			writeHandlerJSONResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated, message)
		})
	})
}
