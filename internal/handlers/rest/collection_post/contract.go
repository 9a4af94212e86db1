//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=collection_post_test
package collection_post

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
	BookSingle(ctx context.Context, donorID, itemID int64, date string, slot entities.TimeSlot) (int64, error)
}
