package schedule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/schedule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateBlackout(ctx context.Context, date string, slot *entities.TimeSlot, reason string) (*entities.Blackout, error) {
	query := `
		INSERT INTO collection_blackouts (date, time_slot, reason)
		VALUES ($1::date, $2, $3)
		RETURNING id, date::text, time_slot, reason, created_at
	`

	var slotArg *string
	if slot != nil {
		s := slot.String()
		slotArg = &s
	}

	var blackoutModel BlackoutDB
	err := r.querier.QueryRow(ctx, query, date, slotArg, reason).
		Scan(
			&blackoutModel.ID,
			&blackoutModel.Date,
			&blackoutModel.TimeSlot,
			&blackoutModel.Reason,
			&blackoutModel.CreatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository create blackout error: %w", err)
	}

	return BlackoutToDomain(&blackoutModel), nil
}

func (r *Repository) ListBlackouts(ctx context.Context) ([]entities.Blackout, error) {
	query := `
		SELECT id, date::text, time_slot, reason, created_at
		FROM collection_blackouts
		ORDER BY date, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list blackouts error: %w", err)
	}
	defer rows.Close()

	blackouts := make([]entities.Blackout, 0, 8)
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
			return nil, fmt.Errorf("unexpected schedule repository list blackouts error: %w", err)
		}
		blackouts = append(blackouts, *BlackoutToDomain(&blackoutModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list blackouts error: %w", err)
	}

	return blackouts, nil
}

func (r *Repository) DeleteBlackout(ctx context.Context, id int64) error {
	query := `DELETE FROM collection_blackouts WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete blackout error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrBlackoutNotFound
	}
	return nil
}

func (r *Repository) CreateOverride(ctx context.Context, date string, slot entities.TimeSlot, capacity int64) (*entities.CapacityOverride, error) {
	// повторная настройка той же пары дата+слот перезаписывает вместимость
	query := `
		INSERT INTO collection_capacity_overrides (date, time_slot, capacity)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (date, time_slot) DO UPDATE SET capacity = EXCLUDED.capacity
		RETURNING id, date::text, time_slot, capacity, created_at
	`

	var overrideModel CapacityOverrideDB
	err := r.querier.QueryRow(ctx, query, date, slot.String(), capacity).
		Scan(
			&overrideModel.ID,
			&overrideModel.Date,
			&overrideModel.TimeSlot,
			&overrideModel.Capacity,
			&overrideModel.CreatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository create override error: %w", err)
	}

	return OverrideToDomain(&overrideModel), nil
}

func (r *Repository) ListOverrides(ctx context.Context) ([]entities.CapacityOverride, error) {
	query := `
		SELECT id, date::text, time_slot, capacity, created_at
		FROM collection_capacity_overrides
		ORDER BY date, time_slot
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list overrides error: %w", err)
	}
	defer rows.Close()

	overrides := make([]entities.CapacityOverride, 0, 8)
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
			return nil, fmt.Errorf("unexpected schedule repository list overrides error: %w", err)
		}
		overrides = append(overrides, *OverrideToDomain(&overrideModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list overrides error: %w", err)
	}

	return overrides, nil
}

func (r *Repository) DeleteOverride(ctx context.Context, id int64) error {
	query := `DELETE FROM collection_capacity_overrides WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete override error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrOverrideNotFound
	}
	return nil
}

func (r *Repository) CreateTruck(ctx context.Context, truckModifyEntity entities.TruckModify) (int64, error) {
	truckModifyModel := FromDomainTruckModify(&truckModifyEntity)

	query := `
		INSERT INTO trucks (name, capacity_per_slot, active)
		VALUES ($1, $2, COALESCE($3, TRUE))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		truckModifyModel.Name,
		truckModifyModel.CapacityPerSlot,
		truckModifyModel.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository create truck error: %w", err)
	}

	return id, nil
}

func (r *Repository) UpdateTruck(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error) {
	truckModifyModel := FromDomainTruckModify(&truckModifyEntity)

	builder := qb.
		Update("trucks")

	if truckModifyModel.Name != nil {
		builder = builder.Set("name", truckModifyModel.Name)
	}
	if truckModifyModel.CapacityPerSlot != nil {
		builder = builder.Set("capacity_per_slot", truckModifyModel.CapacityPerSlot)
	}
	if truckModifyModel.Active != nil {
		builder = builder.Set("active", truckModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": truckModifyModel.ID}).
		Suffix("RETURNING id, name, capacity_per_slot, active, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository update truck error: %w", err)
	}

	var truckModel TruckDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&truckModel.ID,
			&truckModel.Name,
			&truckModel.CapacityPerSlot,
			&truckModel.Active,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository update truck error: %w", err)
	}

	return TruckToDomain(&truckModel), nil
}

func (r *Repository) ListTrucks(ctx context.Context) ([]entities.Truck, error) {
	query := `
		SELECT id, name, capacity_per_slot, active, created_at, updated_at
		FROM trucks
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list trucks error: %w", err)
	}
	defer rows.Close()

	trucks := make([]entities.Truck, 0, 8)
	for rows.Next() {
		var truckModel TruckDB
		err := rows.Scan(
			&truckModel.ID,
			&truckModel.Name,
			&truckModel.CapacityPerSlot,
			&truckModel.Active,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository list trucks error: %w", err)
		}
		trucks = append(trucks, *TruckToDomain(&truckModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list trucks error: %w", err)
	}

	return trucks, nil
}
