//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=blackouts_post_test
package blackouts_post

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
	CreateBlackout(ctx context.Context, date string, slot *entities.TimeSlot, reason string) (*entities.Blackout, error)
}
