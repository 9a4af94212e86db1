package booking_sweeper

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ExpireOverdueBookings(ctx context.Context) (int64, error)
}

// BookingSweeper отменяет брони с прошедшей датой вывоза, чтобы предметы
// с забытыми бронями возвращались в оборот.
type BookingSweeper struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBookingSweeper(log logger.Logger, service Service, interval time.Duration) *BookingSweeper {
	return &BookingSweeper{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BookingSweeper) TTL() time.Duration {
	return b.interval
}

func (b *BookingSweeper) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	expired, err := b.service.ExpireOverdueBookings(ctxWithTimeout)

	if expired > 0 {
		b.log.With(
			logger.NewField("expired_bookings", expired),
		).Info("booking sweeper")
	}

	return err
}

func (b *BookingSweeper) Info() string {
	return "booking sweeper"
}
