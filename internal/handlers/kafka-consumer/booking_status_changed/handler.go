package booking_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	bookingservice "service/internal/service/booking"
	"service/pkg/logger"
)

const (
	statusCollected = "collected"
	statusRejected  = "rejected"
)

// statusChangedEvent - событие из приложения водителя.
type statusChangedEvent struct {
	BookingID int64  `json:"booking_ID"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

type Handler struct {
	bookingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, bookingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		bookingService:           bookingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("booking.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("booking.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("booking.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.status.changed processing")

	switch event.Status {
	case statusCollected:
		err = h.bookingService.MarkCollected(ctx, event.BookingID)
	case statusRejected:
		err = h.bookingService.MarkRejected(ctx, event.BookingID, event.Reason)
	default:
		msgLog.Warn("booking.status.changed handler unknown status for booking")
		sess.MarkMessage(message, "")
		return false
	}
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, bookingservice.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler booking not found")

		case errors.Is(err, bookingservice.ErrBookingAlreadyTerminal):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler booking already terminal")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler failed to process booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("booking.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
