package item

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/item"
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

func (r *Repository) Create(ctx context.Context, itemModifyEntity entities.ItemModify) (int64, error) {
	itemModifyModel := FromDomainModify(&itemModifyEntity)

	query := `
		INSERT INTO items (donor_id, name, category, condition, status, image_url)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		itemModifyModel.DonorID,
		itemModifyModel.Name,
		itemModifyModel.Category,
		itemModifyModel.Condition,
		itemModifyModel.Status,
		itemModifyModel.ImageURL,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, item.ErrItemNotFound
		}
		return 0, fmt.Errorf("unexpected item repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, itemModifyEntity entities.ItemModify) (*entities.Item, error) {
	itemModifyModel := FromDomainModify(&itemModifyEntity)

	builder := qb.
		Update("items")

	// опциональные поля
	if itemModifyModel.Name != nil {
		builder = builder.Set("name", itemModifyModel.Name)
	}
	if itemModifyModel.Category != nil {
		builder = builder.Set("category", itemModifyModel.Category)
	}
	if itemModifyModel.Condition != nil {
		builder = builder.Set("condition", itemModifyModel.Condition)
	}
	if itemModifyModel.Status != nil {
		builder = builder.Set("status", itemModifyModel.Status)
	}
	if itemModifyModel.CollectionDate != nil {
		builder = builder.Set("collection_date", itemModifyModel.CollectionDate)
	}
	if itemModifyModel.TimeSlot != nil {
		builder = builder.Set("time_slot", itemModifyModel.TimeSlot)
	}
	if itemModifyModel.ImageURL != nil {
		builder = builder.Set("image_url", itemModifyModel.ImageURL)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": itemModifyModel.ID}).
		Suffix("RETURNING id, donor_id, name, category, condition, status, collection_date::text, time_slot, image_url, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected item repository update error: %w", err)
	}

	var itemModel ItemDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&itemModel.ID,
			&itemModel.DonorID,
			&itemModel.Name,
			&itemModel.Category,
			&itemModel.Condition,
			&itemModel.Status,
			&itemModel.CollectionDate,
			&itemModel.TimeSlot,
			&itemModel.ImageURL,
			&itemModel.CreatedAt,
			&itemModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected item repository update error: %w", err)
	}

	return ToDomain(&itemModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Item, error) {
	query := `
		SELECT id, donor_id, name, category, condition, status, collection_date::text, time_slot, image_url, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	var itemModel ItemDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&itemModel.ID,
			&itemModel.DonorID,
			&itemModel.Name,
			&itemModel.Category,
			&itemModel.Condition,
			&itemModel.Status,
			&itemModel.CollectionDate,
			&itemModel.TimeSlot,
			&itemModel.ImageURL,
			&itemModel.CreatedAt,
			&itemModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected item repository getbyid error: %w", err)
	}

	return ToDomain(&itemModel), nil
}

func (r *Repository) GetByDonor(ctx context.Context, donorID int64) ([]entities.Item, error) {
	query := `
		SELECT id, donor_id, name, category, condition, status, collection_date::text, time_slot, image_url, created_at, updated_at
		FROM items
		WHERE donor_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, donorID)
	if err != nil {
		return nil, fmt.Errorf("unexpected item repository getbydonor error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]ItemDB, 0, 8)
	for rows.Next() {
		var itemModel ItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.DonorID,
			&itemModel.Name,
			&itemModel.Category,
			&itemModel.Condition,
			&itemModel.Status,
			&itemModel.CollectionDate,
			&itemModel.TimeSlot,
			&itemModel.ImageURL,
			&itemModel.CreatedAt,
			&itemModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected item repository getbydonor error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected item repository getbydonor error: %w", err)
	}

	return ToDomainList(itemModels), nil
}

func (r *Repository) ClearCollectionFields(ctx context.Context, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}

	query := `
		UPDATE items
		SET collection_date = NULL,
		    time_slot = NULL,
		    updated_at = NOW()
		WHERE id = ANY($1)
	`

	_, err := r.querier.Exec(ctx, query, itemIDs)
	if err != nil {
		return fmt.Errorf("unexpected item repository clear collection fields error: %w", err)
	}
	return nil
}
