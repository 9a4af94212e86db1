//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=item_test
package item

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, itemModify entities.ItemModify) (int64, error)
	Update(ctx context.Context, itemModify entities.ItemModify) (*entities.Item, error)
	GetByID(ctx context.Context, id int64) (*entities.Item, error)
	GetByDonor(ctx context.Context, donorID int64) ([]entities.Item, error)
	ClearCollectionFields(ctx context.Context, itemIDs []int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
