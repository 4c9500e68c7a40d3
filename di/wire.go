//go:build wireinject
// +build wireinject

package di

import (
	"propbook/config"
	"propbook/infras/kafka"
	"propbook/infras/metrics"
	"propbook/infras/otel"
	"propbook/infras/redis"
	"propbook/shared/cache"
	"propbook/transport/http"
	"propbook/transport/http/middleware"
	"propbook/transport/http/router"

	bookingRepository "propbook/internal/domains/booking/repository"
	bookingService "propbook/internal/domains/booking/service"
	knowledgeService "propbook/internal/domains/knowledge/service"
	validationService "propbook/internal/domains/validation/service"

	bookingHandler "propbook/internal/handlers/booking"
	knowledgeHandler "propbook/internal/handlers/knowledge"
	validationHandler "propbook/internal/handlers/validation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var validationDomain = wire.NewSet(
	validationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var knowledgeDomain = wire.NewSet(
	knowledgeService.New,
)

var domains = wire.NewSet(
	validationDomain,
	bookingDomain,
	knowledgeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	validationHandler.New,
	bookingHandler.New,
	knowledgeHandler.New,
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
