package booking_status_changed

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
