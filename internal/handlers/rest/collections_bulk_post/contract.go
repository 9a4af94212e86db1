//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=collections_bulk_post_test
package collections_bulk_post

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
	BookMany(ctx context.Context, donorID int64, itemIDs []int64, date string, slot entities.TimeSlot) ([]entities.BookingResult, error)
}
