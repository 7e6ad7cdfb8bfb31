package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/stayforge/hotel-booking-service/pkg/log"
)

func WithLogging(logger log.Logger) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestFields := log.Fields{
				"requestID": uuid.New().String(),
			}
			requestLogger := logger.With(requestFields)
			r = r.WithContext(logger.WithContext(r.Context(), requestFields))

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			loggerWithFields := requestLogger.With(log.Fields{
				"routeName":    getCurrentRouteName(r),
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				loggerWithFields.With(log.Fields{
					"panic": log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					},
				}).Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				loggerWithFields.WithError(meta.Error).Error(r.Context(), "request handled with internal error")
			case meta.Error != nil:
				loggerWithFields.WithError(meta.Error).Warn(r.Context(), "request handled with error")
			default:
				loggerWithFields.Info(r.Context(), "request handled")
			}
		})
	})
}

func getCurrentRouteName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}
	name := route.GetName()
	if name == "" {
		return "unknown"
	}
	return name
}
