//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trucks_put_test
package trucks_put

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
	UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error)
}
