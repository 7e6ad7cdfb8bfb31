package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/stayforge/hotel-booking-service/pkg/env"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

const probeTimeout = 5 * time.Second

// Readiness probe for container orchestration: exits non-zero unless
// the service reports every backing dependency healthy.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	baseURL := env.Must(env.ParseDefault[string]("APP_URL", "http://localhost:8080"))
	client := pkghttp.NewClient(pkghttp.WithClientBaseURL(baseURL))

	resp, err := client.NewRequest(ctx).Get("/health/ready")
	if err != nil {
		fmt.Fprintf(os.Stderr, "readiness probe failed: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode() != http.StatusOK {
		fmt.Fprintf(os.Stderr, "service is not ready: %s\n", resp.Body())
		os.Exit(1)
	}
}
