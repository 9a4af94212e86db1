//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_items_post_test
package admin_items_post

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApproveItem(ctx context.Context, id int64) (*entities.Item, error)
	RejectItem(ctx context.Context, id int64) (*entities.Item, error)
}
