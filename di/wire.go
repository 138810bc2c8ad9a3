//go:build wireinject
// +build wireinject

package di

import (
	"stayledger/config"
	"stayledger/infras/jwt"
	"stayledger/infras/kafka"
	"stayledger/infras/lock"
	"stayledger/infras/ota"
	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/infras/queue"
	"stayledger/infras/redis"
	"stayledger/infras/s3"
	"stayledger/permissions"
	"stayledger/shared/cache"
	"stayledger/transport/http"
	"stayledger/transport/http/middleware"
	"stayledger/transport/http/router"
	"stayledger/transport/worker"

	bookingRepository "stayledger/internal/domains/booking/repository"
	bookingService "stayledger/internal/domains/booking/service"
	channelRepository "stayledger/internal/domains/channel/repository"
	channelService "stayledger/internal/domains/channel/service"
	fraudRepository "stayledger/internal/domains/fraud/repository"
	fraudService "stayledger/internal/domains/fraud/service"
	hotelRepository "stayledger/internal/domains/hotel/repository"
	hotelService "stayledger/internal/domains/hotel/service"
	inventoryRepository "stayledger/internal/domains/inventory/repository"
	inventoryService "stayledger/internal/domains/inventory/service"
	paymentRepository "stayledger/internal/domains/payment/repository"
	paymentService "stayledger/internal/domains/payment/service"
	payoutRepository "stayledger/internal/domains/payout/repository"
	payoutService "stayledger/internal/domains/payout/service"
	roomRepository "stayledger/internal/domains/room/repository"
	roomService "stayledger/internal/domains/room/service"
	userRepository "stayledger/internal/domains/user/repository"
	userService "stayledger/internal/domains/user/service"

	bookingHandler "stayledger/internal/handlers/booking"
	channelHandler "stayledger/internal/handlers/channel"
	inventoryHandler "stayledger/internal/handlers/inventory"
	payoutHandler "stayledger/internal/handlers/payout"
	roomHandler "stayledger/internal/handlers/room"
	userHandler "stayledger/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	lock.New,
	queue.NewClient,
	queue.NewEnqueuer,
	ota.NewRegistry,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewOwnershipMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
	paymentService.NewCalculator,
)

var fraudDomain = wire.NewSet(
	fraudRepository.New,
	fraudService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var payoutDomain = wire.NewSet(
	payoutRepository.New,
	payoutService.New,
)

var channelDomain = wire.NewSet(
	channelRepository.New,
	channelService.New,
	channelService.NewCredentialBox,
)

var domains = wire.NewSet(
	userDomain,
	hotelDomain,
	roomDomain,
	inventoryDomain,
	paymentDomain,
	fraudDomain,
	bookingDomain,
	payoutDomain,
	channelDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	roomHandler.New,
	inventoryHandler.New,
	bookingHandler.New,
	channelHandler.New,
	payoutHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeWorker() (*worker.Worker, error) {
	wire.Build(
		config.Get,
		infrastructures,
		sharedHelpers,
		domains,
		queue.NewServer,
		worker.New,
	)

	return &worker.Worker{}, nil
}
