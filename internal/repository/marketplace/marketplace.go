package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/marketplace"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateReservation(ctx context.Context, itemID, customerID int64) (*entities.Reservation, error) {
	query := `
		INSERT INTO reservations (item_id, customer_id, status)
		VALUES ($1, $2, 'active')
		RETURNING id, item_id, customer_id, status, created_at
	`

	var reservationModel ReservationDB
	err := r.querier.QueryRow(ctx, query, itemID, customerID).
		Scan(
			&reservationModel.ID,
			&reservationModel.ItemID,
			&reservationModel.CustomerID,
			&reservationModel.Status,
			&reservationModel.CreatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected marketplace repository create reservation error: %w", err)
	}

	return ReservationToDomain(&reservationModel), nil
}

func (r *Repository) GetReservation(ctx context.Context, id int64) (*entities.Reservation, error) {
	query := `
		SELECT id, item_id, customer_id, status, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservationModel ReservationDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&reservationModel.ID,
			&reservationModel.ItemID,
			&reservationModel.CustomerID,
			&reservationModel.Status,
			&reservationModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, marketplace.ErrReservationNotFound
		}
		return nil, fmt.Errorf("unexpected marketplace repository get reservation error: %w", err)
	}

	return ReservationToDomain(&reservationModel), nil
}

// GetActiveReservation возвращает nil без ошибки, если активного резерва нет.
func (r *Repository) GetActiveReservation(ctx context.Context, itemID int64) (*entities.Reservation, error) {
	query := `
		SELECT id, item_id, customer_id, status, created_at
		FROM reservations
		WHERE item_id = $1
		  AND status = 'active'
	`

	var reservationModel ReservationDB
	err := r.querier.QueryRow(ctx, query, itemID).
		Scan(
			&reservationModel.ID,
			&reservationModel.ItemID,
			&reservationModel.CustomerID,
			&reservationModel.Status,
			&reservationModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected marketplace repository get active reservation error: %w", err)
	}

	return ReservationToDomain(&reservationModel), nil
}

func (r *Repository) UpdateReservationStatus(ctx context.Context, id int64, status entities.ReservationStatusType) error {
	query := `
		UPDATE reservations
		SET status = $2
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected marketplace repository update reservation status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return marketplace.ErrReservationNotFound
	}
	return nil
}

func (r *Repository) CreateOrder(ctx context.Context, customerID int64) (*entities.Order, error) {
	query := `
		INSERT INTO orders (customer_id, status)
		VALUES ($1, 'pending')
		RETURNING id, customer_id, status, created_at, updated_at
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, customerID).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected marketplace repository create order error: %w", err)
	}

	return OrderToDomain(&orderModel), nil
}

func (r *Repository) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT id, customer_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, marketplace.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected marketplace repository get order error: %w", err)
	}

	return OrderToDomain(&orderModel), nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, customer_id, status, created_at, updated_at
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, marketplace.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected marketplace repository update order status error: %w", err)
	}

	return OrderToDomain(&orderModel), nil
}

func (r *Repository) AddOrderItem(ctx context.Context, orderID, itemID int64) error {
	query := `
		INSERT INTO order_items (order_id, item_id)
		VALUES ($1, $2)
	`

	_, err := r.querier.Exec(ctx, query, orderID, itemID)
	if err != nil {
		return fmt.Errorf("unexpected marketplace repository add order item error: %w", err)
	}
	return nil
}

func (r *Repository) SetOrderMeta(ctx context.Context, orderID int64, key, value string) error {
	query := `
		INSERT INTO order_meta (order_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := r.querier.Exec(ctx, query, orderID, key, value)
	if err != nil {
		return fmt.Errorf("unexpected marketplace repository set order meta error: %w", err)
	}
	return nil
}

func (r *Repository) HasActiveBooking(ctx context.Context, itemID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE item_id = $1
			  AND status IN ('pending', 'scheduled', 'confirmed')
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected marketplace repository has active booking error: %w", err)
	}
	return exists, nil
}
