//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=marketplace_test
package marketplace

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	CreateReservation(ctx context.Context, itemID, customerID int64) (*entities.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*entities.Reservation, error)
	GetActiveReservation(ctx context.Context, itemID int64) (*entities.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status entities.ReservationStatusType) error

	CreateOrder(ctx context.Context, customerID int64) (*entities.Order, error)
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	AddOrderItem(ctx context.Context, orderID, itemID int64) error
	SetOrderMeta(ctx context.Context, orderID int64, key, value string) error

	HasActiveBooking(ctx context.Context, itemID int64) (bool, error)
}

type ItemService interface {
	GetItem(ctx context.Context, id int64) (*entities.Item, error)
	UpdateItem(ctx context.Context, itemModify entities.ItemModify) (*entities.Item, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
