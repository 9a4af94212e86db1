//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slots_get_test
package slots_get

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
	GetAvailability(ctx context.Context, date string) ([]entities.SlotAvailability, error)
}
