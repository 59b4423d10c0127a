//go:build wireinject
// +build wireinject

package di

import (
	"guesthouse/config"
	"guesthouse/infras/jwt"
	"guesthouse/infras/kafka"
	"guesthouse/infras/mail"
	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/infras/redis"
	"guesthouse/infras/s3"
	"guesthouse/internal/scheduler"
	"guesthouse/shared/cache"
	"guesthouse/transport/http"
	"guesthouse/transport/http/middleware"
	"guesthouse/transport/http/router"

	"github.com/google/wire"

	authService "guesthouse/internal/domains/auth/service"
	availabilityService "guesthouse/internal/domains/availability/service"
	bookingRepository "guesthouse/internal/domains/booking/repository"
	bookingService "guesthouse/internal/domains/booking/service"
	notificationService "guesthouse/internal/domains/notification/service"
	roomRepository "guesthouse/internal/domains/room/repository"
	roomService "guesthouse/internal/domains/room/service"
	userRepository "guesthouse/internal/domains/user/repository"
	userService "guesthouse/internal/domains/user/service"

	authHandler "guesthouse/internal/handlers/auth"
	availabilityHandler "guesthouse/internal/handlers/availability"
	bookingHandler "guesthouse/internal/handlers/booking"
	roomHandler "guesthouse/internal/handlers/room"
	userHandler "guesthouse/internal/handlers/user"

	"guesthouse/permissions"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	availabilityService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeNotifier() *Notifier {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		mail.New,
		notificationDomain,
		wire.Struct(new(Notifier), "*"),
	)

	return &Notifier{}
}
