//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error)
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BookingStatusType) (*entities.Booking, error)

	GetItemForBooking(ctx context.Context, itemID int64) (*entities.Item, error)
	HasActiveBooking(ctx context.Context, itemID int64) (bool, error)
	CancelActiveBookingsBefore(ctx context.Context, date string) ([]int64, error)
}

type ItemService interface {
	UpdateItem(ctx context.Context, itemModify entities.ItemModify) (*entities.Item, error)
	ClearCollectionFields(ctx context.Context, itemIDs []int64) error
}

type AvailabilityService interface {
	GetAvailability(ctx context.Context, date string) ([]entities.SlotAvailability, error)
}

type SlotSchedule interface {
	IsValidSlot(slot entities.TimeSlot) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
