package booking

import (
	"context"
	"fmt"

	"service/internal/entities"
)

// Читающие запросы калькулятора доступности. Живут рядом с бронями,
// потому что считают занятость по той же таблице bookings.

func (r *Repository) ListBlackouts(ctx context.Context, date string) ([]entities.Blackout, error) {
	query := `
		SELECT id, date::text, time_slot, reason, created_at
		FROM collection_blackouts
		WHERE date = $1::date
	`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list blackouts error: %w", err)
	}
	defer rows.Close()

	blackouts := make([]entities.Blackout, 0, 4)
	for rows.Next() {
		var blackoutModel BlackoutDB
		err := rows.Scan(
			&blackoutModel.ID,
			&blackoutModel.Date,
			&blackoutModel.TimeSlot,
			&blackoutModel.Reason,
			&blackoutModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository list blackouts error: %w", err)
		}
		blackouts = append(blackouts, *BlackoutToDomain(&blackoutModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list blackouts error: %w", err)
	}

	return blackouts, nil
}

func (r *Repository) ListOverrides(ctx context.Context, date string) ([]entities.CapacityOverride, error) {
	query := `
		SELECT id, date::text, time_slot, capacity, created_at
		FROM collection_capacity_overrides
		WHERE date = $1::date
	`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list overrides error: %w", err)
	}
	defer rows.Close()

	overrides := make([]entities.CapacityOverride, 0, 4)
	for rows.Next() {
		var overrideModel CapacityOverrideDB
		err := rows.Scan(
			&overrideModel.ID,
			&overrideModel.Date,
			&overrideModel.TimeSlot,
			&overrideModel.Capacity,
			&overrideModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository list overrides error: %w", err)
		}
		overrides = append(overrides, *OverrideToDomain(&overrideModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list overrides error: %w", err)
	}

	return overrides, nil
}

func (r *Repository) SumActiveTruckCapacity(ctx context.Context) (int64, error) {
	query := `
		SELECT COALESCE(SUM(capacity_per_slot), 0)
		FROM trucks
		WHERE active = TRUE
	`

	var sum int64
	err := r.querier.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository sum truck capacity error: %w", err)
	}
	return sum, nil
}

func (r *Repository) CountActiveBookingsBySlot(ctx context.Context, date string) (map[entities.TimeSlot]int64, error) {
	query := `
		SELECT time_slot, COUNT(*)
		FROM bookings
		WHERE scheduled_date = $1::date
		  AND status IN ('pending', 'scheduled', 'confirmed')
		GROUP BY time_slot
	`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository count bookings error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.TimeSlot]int64, 4)
	for rows.Next() {
		var (
			slot  string
			count int64
		)
		err := rows.Scan(&slot, &count)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository count bookings error: %w", err)
		}
		counts[entities.TimeSlot(slot)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository count bookings error: %w", err)
	}

	return counts, nil
}
