//go:build wireinject
// +build wireinject

package di

import (
	"tablebook/config"
	"tablebook/infras/kafka"
	"tablebook/infras/otel"
	"tablebook/infras/postgres"
	"tablebook/infras/redis"
	"tablebook/shared/cache"
	"tablebook/shared/mailer"
	"tablebook/transport/http"
	"tablebook/transport/http/middleware"
	"tablebook/transport/http/router"

	reservationRepository "tablebook/internal/domains/reservation/repository"
	reservationService "tablebook/internal/domains/reservation/service"
	restaurantRepository "tablebook/internal/domains/restaurant/repository"
	restaurantService "tablebook/internal/domains/restaurant/service"
	tableRepository "tablebook/internal/domains/table/repository"
	tableService "tablebook/internal/domains/table/service"
	waitlistRepository "tablebook/internal/domains/waitlist/repository"
	waitlistService "tablebook/internal/domains/waitlist/service"

	reservationHandler "tablebook/internal/handlers/reservation"
	restaurantHandler "tablebook/internal/handlers/restaurant"
	tableHandler "tablebook/internal/handlers/table"
	waitlistHandler "tablebook/internal/handlers/waitlist"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	mailer.New,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.NewAvailability,
	reservationService.New,
)

var waitlistDomain = wire.NewSet(
	waitlistRepository.New,
	waitlistService.New,
	wire.Bind(new(reservationService.WaitlistNotifier), new(waitlistService.Waitlist)),
)

var domains = wire.NewSet(
	restaurantDomain,
	tableDomain,
	reservationDomain,
	waitlistDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	restaurantHandler.New,
	tableHandler.New,
	reservationHandler.New,
	waitlistHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
