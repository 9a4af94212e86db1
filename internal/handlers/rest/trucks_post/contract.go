//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trucks_post_test
package trucks_post

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
	CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error)
}
