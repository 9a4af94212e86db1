package item

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Item struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Item {
	return &Item{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateItem - приём пожертвования. Предмет всегда создаётся в статусе pending,
// статус из запроса игнорируется.
func (s *Item) CreateItem(ctx context.Context, itemModify entities.ItemModify) (int64, error) {
	if itemModify.DonorID == nil ||
		itemModify.Name == nil ||
		itemModify.Category == nil ||
		itemModify.Condition == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*itemModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidCategory(*itemModify.Category) {
		return 0, ErrInvalidCategory
	}
	if !isValidCondition(*itemModify.Condition) {
		return 0, ErrInvalidCondition
	}

	pending := entities.ItemPending
	itemModify.Status = &pending

	id, err := s.repository.Create(ctx, itemModify)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	return id, nil
}

// UpdateItem - частичное обновление. Смена статуса проверяется по таблице
// переходов, вызывающим не нужно дублировать предусловия.
func (s *Item) UpdateItem(ctx context.Context, itemModify entities.ItemModify) (*entities.Item, error) {
	if itemModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if itemModify.Name == nil &&
		itemModify.Category == nil &&
		itemModify.Condition == nil &&
		itemModify.Status == nil &&
		itemModify.CollectionDate == nil &&
		itemModify.TimeSlot == nil &&
		itemModify.ImageURL == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if itemModify.Status != nil && !isValidStatus(itemModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	if itemModify.Status != nil {
		current, err := s.repository.GetByID(ctx, *itemModify.ID)
		if err != nil {
			return nil, fmt.Errorf("get item for transition check: %w", err)
		}
		if current.Status != *itemModify.Status && !current.Status.CanTransition(*itemModify.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, *itemModify.Status)
		}
	}

	item, err := s.repository.Update(ctx, itemModify)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *Item) ApproveItem(ctx context.Context, id int64) (*entities.Item, error) {
	return s.transitionTo(ctx, id, entities.ItemApproved)
}

func (s *Item) RejectItem(ctx context.Context, id int64) (*entities.Item, error) {
	return s.transitionTo(ctx, id, entities.ItemRejected)
}

func (s *Item) transitionTo(ctx context.Context, id int64, status entities.ItemStatusType) (*entities.Item, error) {
	var updated *entities.Item
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.UpdateItem(ctx, entities.ItemModify{
			ID:     &id,
			Status: &status,
		})
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ClearCollectionFields сбрасывает collection_date/time_slot в NULL.
// Отдельный метод, потому что через ItemModify nil означает "не трогать".
func (s *Item) ClearCollectionFields(ctx context.Context, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	err := s.repository.ClearCollectionFields(ctx, itemIDs)
	if err != nil {
		return fmt.Errorf("clear collection fields: %w", err)
	}
	return nil
}

func (s *Item) GetItem(ctx context.Context, id int64) (*entities.Item, error) {
	item, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *Item) GetDonorItems(ctx context.Context, donorID int64) ([]entities.Item, error) {
	items, err := s.repository.GetByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("get donor items: %w", err)
	}
	return items, nil
}
