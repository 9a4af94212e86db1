//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	ListBlackouts(ctx context.Context, date string) ([]entities.Blackout, error)
	ListOverrides(ctx context.Context, date string) ([]entities.CapacityOverride, error)
	SumActiveTruckCapacity(ctx context.Context) (int64, error)
	CountActiveBookingsBySlot(ctx context.Context, date string) (map[entities.TimeSlot]int64, error)
}

type SlotSchedule interface {
	Slots() []entities.TimeSlot
	IsValidSlot(slot entities.TimeSlot) bool
}
