//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_post_test
package capacity_post

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
	CreateOverride(ctx context.Context, date string, slot entities.TimeSlot, capacity int64) (*entities.CapacityOverride, error)
}
