//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_collections_post_test
package driver_collections_post

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkCollected(ctx context.Context, bookingID int64) error
	MarkRejected(ctx context.Context, bookingID int64, reason string) error
}
