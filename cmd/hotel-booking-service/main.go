package main

import (
	"context"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/http"
	"github.com/stayforge/hotel-booking-service/internal/pkg/cmd"
	pkgcmd "github.com/stayforge/hotel-booking-service/pkg/cmd"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

func main() {
	ctx := context.Background()
	infra := cmd.MustInitInfrastructure(ctx)
	defer infra.Close(ctx)
	defer pkgcmd.HandleAppPanic(ctx, infra.Logger)

	container := hotelbooking.NewDependencyContainer(infra)

	httpServer := pkghttp.NewServer(
		infra.Config.ServerAddress,
		pkghttp.WithLogging(infra.Logger),
		pkghttp.WithMetrics(infra.Metrics),
		pkghttp.WithAuth(container.AuthProvider, http.BearerTokenProvider),
		pkghttp.WithMetricsEndpoint("/metrics"),
		pkghttp.WithCORSHandler(),
	)
	container.RegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
