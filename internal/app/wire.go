//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"service/internal/handlers/tasks/booking_sweeper"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/slot_schedule"

	bookingRepo "service/internal/repository/booking"
	itemRepo "service/internal/repository/item"
	marketplaceRepo "service/internal/repository/marketplace"
	scheduleRepo "service/internal/repository/schedule"
	availabilityService "service/internal/service/availability"
	bookingService "service/internal/service/booking"
	itemService "service/internal/service/item"
	marketplaceService "service/internal/service/marketplace"
	scheduleService "service/internal/service/schedule"

	"service/pkg/logger"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		slot_schedule.New,

		provideItemRepository,
		provideBookingRepository,
		provideScheduleRepository,
		provideMarketplaceRepository,

		provideServiceItem,
		provideServiceAvailability,
		provideServiceBooking,
		provideServiceSchedule,
		provideServiceMarketplace,

		provideBookingSweeperTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAvailability), new(*availabilityService.Availability)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceItem), new(*itemService.Item)),
		wire.Bind(new(ServiceMarketplace), new(*marketplaceService.Marketplace)),

		wire.Bind(new(itemService.Repository), new(*itemRepo.Repository)),
		wire.Bind(new(availabilityService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(marketplaceService.Repository), new(*marketplaceRepo.Repository)),

		wire.Bind(new(bookingService.ItemService), new(*itemService.Item)),
		wire.Bind(new(bookingService.AvailabilityService), new(*availabilityService.Availability)),
		wire.Bind(new(marketplaceService.ItemService), new(*itemService.Item)),

		wire.Bind(new(availabilityService.SlotSchedule), new(*slot_schedule.SlotSchedule)),
		wire.Bind(new(bookingService.SlotSchedule), new(*slot_schedule.SlotSchedule)),
		wire.Bind(new(scheduleService.SlotSchedule), new(*slot_schedule.SlotSchedule)),

		wire.Bind(new(itemService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(marketplaceService.TxManager), new(*tx.Manager)),

		wire.Bind(new(booking_sweeper.Service), new(*bookingService.Booking)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		slot_schedule.New,

		provideItemRepository,
		provideBookingRepository,

		provideServiceItem,
		provideServiceAvailability,
		provideServiceBooking,

		wire.Bind(new(itemService.Repository), new(*itemRepo.Repository)),
		wire.Bind(new(availabilityService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),

		wire.Bind(new(bookingService.ItemService), new(*itemService.Item)),
		wire.Bind(new(bookingService.AvailabilityService), new(*availabilityService.Availability)),

		wire.Bind(new(availabilityService.SlotSchedule), new(*slot_schedule.SlotSchedule)),
		wire.Bind(new(bookingService.SlotSchedule), new(*slot_schedule.SlotSchedule)),

		wire.Bind(new(itemService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
