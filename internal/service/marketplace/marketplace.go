package marketplace

import (
	"context"
	"fmt"

	"service/internal/entities"
)

// Marketplace - витрина для соцработников: резервирование одобренных
// предметов и оформление заказа на доставку.
type Marketplace struct {
	repository  Repository
	itemService ItemService
	txManager   TxManager
}

func New(repository Repository, itemService ItemService, txManager TxManager) *Marketplace {
	return &Marketplace{
		repository:  repository,
		itemService: itemService,
		txManager:   txManager,
	}
}

// ReserveItem резервирует одобренный предмет за соцработником. Предмет с
// активной бронью на вывоз резервировать нельзя - он ещё не на складе.
func (m *Marketplace) ReserveItem(ctx context.Context, customerID, itemID int64) (*entities.Reservation, error) {
	if customerID <= 0 || itemID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	var reservation *entities.Reservation
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := m.itemService.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if item.Status != entities.ItemApproved {
			return ErrItemNotAvailable
		}

		hasBooking, err := m.repository.HasActiveBooking(ctx, itemID)
		if err != nil {
			return fmt.Errorf("check active booking: %w", err)
		}
		if hasBooking {
			return ErrItemNotAvailable
		}

		existing, err := m.repository.GetActiveReservation(ctx, itemID)
		if err != nil {
			return fmt.Errorf("check active reservation: %w", err)
		}
		if existing != nil {
			return ErrAlreadyReserved
		}

		created, err := m.repository.CreateReservation(ctx, itemID, customerID)
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		reserved := entities.ItemReserved
		_, err = m.itemService.UpdateItem(ctx, entities.ItemModify{
			ID:     &itemID,
			Status: &reserved,
		})
		if err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

		reservation = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (m *Marketplace) ReleaseReservation(ctx context.Context, customerID, reservationID int64) error {
	return m.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := m.repository.GetReservation(ctx, reservationID)
		if err != nil {
			return fmt.Errorf("get reservation: %w", err)
		}
		if reservation.CustomerID != customerID {
			return ErrNotReservationOwner
		}
		if reservation.Status != entities.ReservationActive {
			return ErrReservationNotFound
		}

		err = m.repository.UpdateReservationStatus(ctx, reservationID, entities.ReservationReleased)
		if err != nil {
			return fmt.Errorf("release reservation: %w", err)
		}

		approved := entities.ItemApproved
		_, err = m.itemService.UpdateItem(ctx, entities.ItemModify{
			ID:     &reservation.ItemID,
			Status: &approved,
		})
		if err != nil {
			return fmt.Errorf("revert item status: %w", err)
		}
		return nil
	})
}

// Checkout превращает активные резервы соцработника в заказ. Каждый предмет
// партии обязан быть зарезервирован именно этим соцработником, иначе весь
// заказ отклоняется - частичный checkout создавал бы заказы-обрубки.
func (m *Marketplace) Checkout(ctx context.Context, customerID int64, itemIDs []int64, meta map[string]string) (*entities.Order, error) {
	if customerID <= 0 || len(itemIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}

	var order *entities.Order
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := m.repository.CreateOrder(ctx, customerID)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, itemID := range itemIDs {
			reservation, err := m.repository.GetActiveReservation(ctx, itemID)
			if err != nil {
				return fmt.Errorf("get reservation for item %d: %w", itemID, err)
			}
			if reservation == nil || reservation.CustomerID != customerID {
				return fmt.Errorf("item %d: %w", itemID, ErrNotReserved)
			}

			err = m.repository.AddOrderItem(ctx, created.ID, itemID)
			if err != nil {
				return fmt.Errorf("add order item %d: %w", itemID, err)
			}

			err = m.repository.UpdateReservationStatus(ctx, reservation.ID, entities.ReservationConverted)
			if err != nil {
				return fmt.Errorf("convert reservation %d: %w", reservation.ID, err)
			}
		}

		for key, value := range meta {
			err = m.repository.SetOrderMeta(ctx, created.ID, key, value)
			if err != nil {
				return fmt.Errorf("set order meta %q: %w", key, err)
			}
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (m *Marketplace) ConfirmOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	return m.transitionOrder(ctx, orderID, entities.OrderConfirmed)
}

func (m *Marketplace) MarkDelivered(ctx context.Context, orderID int64) (*entities.Order, error) {
	return m.transitionOrder(ctx, orderID, entities.OrderDelivered)
}

func (m *Marketplace) transitionOrder(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	var updated *entities.Order
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := m.repository.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.Status.CanTransition(status) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, status)
		}

		order, err = m.repository.UpdateOrderStatus(ctx, orderID, status)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
