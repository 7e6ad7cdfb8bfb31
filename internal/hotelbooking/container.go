package hotelbooking

import (
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/http"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/password"
	infraredis "github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/redis"
	infrasql "github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/sql"
	infratoken "github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/token"
	"github.com/stayforge/hotel-booking-service/internal/pkg/cmd"
	pkgauth "github.com/stayforge/hotel-booking-service/pkg/auth"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
	"github.com/stayforge/hotel-booking-service/pkg/worker"
)

type DependencyContainer struct {
	AuthProvider pkgauth.Provider[http.UserPrincipal]

	registerHandler      http.RegisterHandler
	loginHandler         http.LoginHandler
	getProfileHandler    http.GetProfileHandler
	updateProfileHandler http.UpdateProfileHandler
	listHotelsHandler    http.ListHotelsHandler
	getHotelHandler      http.GetHotelHandler
	createHotelHandler   http.CreateHotelHandler
	updateHotelHandler   http.UpdateHotelHandler
	deleteHotelHandler   http.DeleteHotelHandler
	healthLiveHandler    http.HealthLiveHandler
	healthReadyHandler   http.HealthReadyHandler
}

func NewDependencyContainer(infra *cmd.InfrastructureContainer) DependencyContainer {
	userRepo := infrasql.NewUserRepository(infra.DB)
	hotelRepo := infrasql.NewHotelRepository(infra.DB)

	tokenCodec := infratoken.NewCodec(infra.Config.JWTSecret, infra.Config.TokenTTL)
	passwordEncoder := password.NewBcryptEncoder(
		password.DefaultHashCost,
		worker.NewPool(worker.MaxWorkersCountNumCPU),
	)

	authService := service.NewAuth(userRepo, passwordEncoder, tokenCodec)
	profileService := service.NewProfile(userRepo)
	hotelService := service.NewHotel(hotelRepo)
	healthService := service.NewHealth(
		infrasql.NewPinger(infra.DB),
		infraredis.NewPinger(infra.Redis),
	)

	return DependencyContainer{
		AuthProvider: http.NewAuthProvider(tokenCodec),

		registerHandler:      http.NewRegisterHandler(authService),
		loginHandler:         http.NewLoginHandler(authService),
		getProfileHandler:    http.NewGetProfileHandler(profileService),
		updateProfileHandler: http.NewUpdateProfileHandler(profileService),
		listHotelsHandler:    http.NewListHotelsHandler(hotelService),
		getHotelHandler:      http.NewGetHotelHandler(hotelService),
		createHotelHandler:   http.NewCreateHotelHandler(hotelService),
		updateHotelHandler:   http.NewUpdateHotelHandler(hotelService),
		deleteHotelHandler:   http.NewDeleteHotelHandler(hotelService),
		healthLiveHandler:    http.NewHealthLiveHandler(),
		healthReadyHandler:   http.NewHealthReadyHandler(healthService),
	}
}

func (c *DependencyContainer) RegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.healthLiveHandler)
	registry.Register(c.healthReadyHandler)
	registry.Register(c.registerHandler)
	registry.Register(c.loginHandler)
	registry.Register(c.listHotelsHandler)
	registry.Register(c.getHotelHandler)

	registry.Register(c.getProfileHandler, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.updateProfileHandler, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.createHotelHandler, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.updateHotelHandler, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.deleteHotelHandler, pkghttp.WithAuthenticationRequirement())
}
