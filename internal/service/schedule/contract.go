//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	CreateBlackout(ctx context.Context, date string, slot *entities.TimeSlot, reason string) (*entities.Blackout, error)
	ListBlackouts(ctx context.Context) ([]entities.Blackout, error)
	DeleteBlackout(ctx context.Context, id int64) error

	CreateOverride(ctx context.Context, date string, slot entities.TimeSlot, capacity int64) (*entities.CapacityOverride, error)
	ListOverrides(ctx context.Context) ([]entities.CapacityOverride, error)
	DeleteOverride(ctx context.Context, id int64) error

	CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error)
	UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error)
	ListTrucks(ctx context.Context) ([]entities.Truck, error)
}

type SlotSchedule interface {
	IsValidSlot(slot entities.TimeSlot) bool
}
