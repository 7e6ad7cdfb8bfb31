package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stayforge/hotel-booking-service/pkg/metric"
)

const (
	metricNameRequestDuration = "http_api_request_duration_seconds"
	metricNameRequestPanics   = "http_api_request_panics_total"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()
			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestMetrics := metrics.With(metric.Labels{
				"routeName": getCurrentRouteName(r),
				"code":      strconv.Itoa(meta.Code),
			})

			requestMetrics.Duration(metricNameRequestDuration, time.Since(startedAt))
			if meta.Panic != nil {
				requestMetrics.Increment(metricNameRequestPanics)
			}
		})
	})
}

func WithMetricsEndpoint(path string) ServerOption {
	return func(router *mux.Router) {
		router.
			Methods(http.MethodGet).
			Path(path).
			Handler(promhttp.Handler())
	}
}
