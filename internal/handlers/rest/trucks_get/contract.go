//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trucks_get_test
package trucks_get

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
	ListTrucks(ctx context.Context) ([]entities.Truck, error)
}
