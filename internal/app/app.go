package app

import (
	"context"
	"time"

	admin_collections_post "service/internal/handlers/rest/admin_collections_post"
	admin_items_post "service/internal/handlers/rest/admin_items_post"
	blackouts_delete "service/internal/handlers/rest/blackouts_delete"
	blackouts_get "service/internal/handlers/rest/blackouts_get"
	blackouts_post "service/internal/handlers/rest/blackouts_post"
	capacity_delete "service/internal/handlers/rest/capacity_delete"
	capacity_get "service/internal/handlers/rest/capacity_get"
	capacity_post "service/internal/handlers/rest/capacity_post"
	checkout_post "service/internal/handlers/rest/checkout_post"
	collection_post "service/internal/handlers/rest/collection_post"
	collections_bulk_post "service/internal/handlers/rest/collections_bulk_post"
	driver_collections_post "service/internal/handlers/rest/driver_collections_post"
	items_post "service/internal/handlers/rest/items_post"
	reservations_post "service/internal/handlers/rest/reservations_post"
	slots_get "service/internal/handlers/rest/slots_get"
	trucks_get "service/internal/handlers/rest/trucks_get"
	trucks_post "service/internal/handlers/rest/trucks_post"
	trucks_put "service/internal/handlers/rest/trucks_put"
	"service/internal/handlers/tasks/booking_sweeper"
	"service/internal/pkg/config"

	bookingRepo "service/internal/repository/booking"
	itemRepo "service/internal/repository/item"
	marketplaceRepo "service/internal/repository/marketplace"
	scheduleRepo "service/internal/repository/schedule"
	availabilityService "service/internal/service/availability"
	bookingService "service/internal/service/booking"
	itemService "service/internal/service/item"
	marketplaceService "service/internal/service/marketplace"
	scheduleService "service/internal/service/schedule"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceAvailability ServiceAvailability
	ServiceBooking      ServiceBooking
	ServiceSchedule     ServiceSchedule
	ServiceItem         ServiceItem
	ServiceMarketplace  ServiceMarketplace
	BackgroundWorkers   *background.Worker
}

type ServiceAvailability interface {
	slots_get.Service
}

type ServiceBooking interface {
	collection_post.Service
	collections_bulk_post.Service
	admin_collections_post.Service
	driver_collections_post.Service
}

type ServiceSchedule interface {
	blackouts_get.Service
	blackouts_post.Service
	blackouts_delete.Service
	capacity_get.Service
	capacity_post.Service
	capacity_delete.Service
	trucks_get.Service
	trucks_post.Service
	trucks_put.Service
}

type ServiceItem interface {
	items_post.Service
	admin_items_post.Service
}

type ServiceMarketplace interface {
	reservations_post.Service
	checkout_post.Service
}

type KafkaWorkerApp struct {
	BookingService *bookingService.Booking
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideItemRepository(querier *querier.Querier) *itemRepo.Repository {
	return itemRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideMarketplaceRepository(querier *querier.Querier) *marketplaceRepo.Repository {
	return marketplaceRepo.New(querier)
}

func provideServiceItem(
	repository itemService.Repository,
	txManager itemService.TxManager,
) *itemService.Item {
	return itemService.New(repository, txManager)
}

func provideServiceAvailability(
	repository availabilityService.Repository,
	schedule availabilityService.SlotSchedule,
) *availabilityService.Availability {
	return availabilityService.New(repository, schedule)
}

func provideServiceBooking(
	repository bookingService.Repository,
	items bookingService.ItemService,
	availability bookingService.AvailabilityService,
	schedule bookingService.SlotSchedule,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(
		repository,
		items,
		availability,
		schedule,
		txManager,
	)
}

func provideServiceSchedule(
	repository scheduleService.Repository,
	schedule scheduleService.SlotSchedule,
) *scheduleService.Schedule {
	return scheduleService.New(repository, schedule)
}

func provideServiceMarketplace(
	repository marketplaceService.Repository,
	items marketplaceService.ItemService,
	txManager marketplaceService.TxManager,
) *marketplaceService.Marketplace {
	return marketplaceService.New(repository, items, txManager)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.BookingSweepInterval)
}

func provideBookingSweeperTask(
	log logger.Logger,
	bookingService booking_sweeper.Service,
	interval SweepInterval,
) *booking_sweeper.BookingSweeper {
	return booking_sweeper.NewBookingSweeper(log, bookingService, time.Duration(interval))
}

func provideTaskList(
	bookingSweeperTask *booking_sweeper.BookingSweeper,
) []background.Task {
	return []background.Task{
		bookingSweeperTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
