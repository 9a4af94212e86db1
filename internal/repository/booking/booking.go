package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/booking"
)

const bookingColumns = `id, item_id, type, scheduled_date::text, time_slot, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingModifyEntity entities.BookingModify) (*entities.Booking, error) {
	bookingModifyModel := FromDomainModify(&bookingModifyEntity)

	query := `
		INSERT INTO bookings (item_id, type, scheduled_date, time_slot, status)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING ` + bookingColumns

	bookingModel, err := r.scanBooking(r.querier.QueryRow(
		ctx,
		query,
		bookingModifyModel.ItemID,
		bookingModifyModel.Type,
		bookingModifyModel.ScheduledDate,
		bookingModifyModel.TimeSlot,
		bookingModifyModel.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return ToDomain(bookingModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	bookingModel, err := r.scanBooking(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(bookingModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.BookingStatusType) (*entities.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	bookingModel, err := r.scanBooking(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository update status error: %w", err)
	}

	return ToDomain(bookingModel), nil
}

func (r *Repository) GetItemForBooking(ctx context.Context, itemID int64) (*entities.Item, error) {
	query := `
		SELECT id, donor_id, status
		FROM items
		WHERE id = $1
	`

	var (
		id      int64
		donorID int64
		status  string
	)
	err := r.querier.QueryRow(ctx, query, itemID).Scan(&id, &donorID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get item error: %w", err)
	}

	return &entities.Item{
		ID:      id,
		DonorID: donorID,
		Status:  entities.ItemStatusType(status),
	}, nil
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
		return false, fmt.Errorf("unexpected booking repository has active booking error: %w", err)
	}
	return exists, nil
}

// CancelActiveBookingsBefore отменяет все активные брони с датой вывоза
// раньше указанной и возвращает их item_id для сброса полей предметов.
func (r *Repository) CancelActiveBookingsBefore(ctx context.Context, date string) ([]int64, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE scheduled_date < $1::date
		  AND status IN ('pending', 'scheduled', 'confirmed')
		RETURNING item_id
	`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository cancel overdue error: %w", err)
	}
	defer rows.Close()

	itemIDs := make([]int64, 0, 8)
	for rows.Next() {
		var itemID int64
		err := rows.Scan(&itemID)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository cancel overdue error: %w", err)
		}
		itemIDs = append(itemIDs, itemID)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository cancel overdue error: %w", err)
	}

	return itemIDs, nil
}

func (r *Repository) scanBooking(row pgx.Row) (*BookingDB, error) {
	var bookingModel BookingDB
	err := row.Scan(
		&bookingModel.ID,
		&bookingModel.ItemID,
		&bookingModel.Type,
		&bookingModel.ScheduledDate,
		&bookingModel.TimeSlot,
		&bookingModel.Status,
		&bookingModel.CreatedAt,
		&bookingModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bookingModel, nil
}
