package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
)

type Booking struct {
	repository          Repository
	itemService         ItemService
	availabilityService AvailabilityService
	schedule            SlotSchedule
	txManager           TxManager
}

func New(
	repository Repository,
	itemService ItemService,
	availabilityService AvailabilityService,
	schedule SlotSchedule,
	txManager TxManager,
) *Booking {
	return &Booking{
		repository:          repository,
		itemService:         itemService,
		availabilityService: availabilityService,
		schedule:            schedule,
		txManager:           txManager,
	}
}

// BookSingle бронирует вывоз одного предмета. Вся проверка предусловий и
// вставка выполняются в одной транзакции, чтобы между check и write не было
// окна для гонки.
func (b *Booking) BookSingle(ctx context.Context, donorID, itemID int64, date string, slot entities.TimeSlot) (int64, error) {
	if itemID <= 0 {
		return 0, ErrInvalidItemID
	}
	if !isValidDate(date) {
		return 0, ErrInvalidDate
	}
	if !b.schedule.IsValidSlot(slot) {
		return 0, ErrInvalidSlot
	}

	var bookingID int64
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		if err := b.checkSlotOpen(ctx, date, slot); err != nil {
			return err
		}

		id, err := b.bookOne(ctx, donorID, itemID, date, slot)
		if err != nil {
			return err
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// BookMany применяет те же предусловия к каждому предмету партии и собирает
// поэлементный результат. Транзакция одна на всю партию - не ради
// всё-или-ничего, а чтобы конкурентные bulk-запросы не переплелись и не
// забронировали один предмет дважды. Конфликт по одному предмету не роняет
// остальные; откатывает всю партию только настоящая ошибка хранилища.
func (b *Booking) BookMany(ctx context.Context, donorID int64, itemIDs []int64, date string, slot entities.TimeSlot) ([]entities.BookingResult, error) {
	if len(itemIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDate(date) {
		return nil, ErrInvalidDate
	}
	if !b.schedule.IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}

	results := make([]entities.BookingResult, 0, len(itemIDs))
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		if err := b.checkSlotOpen(ctx, date, slot); err != nil {
			return err
		}

		for _, itemID := range itemIDs {
			id, err := b.bookOne(ctx, donorID, itemID, date, slot)
			if err != nil {
				code, known := bookingErrorCode(err)
				if !known {
					return err
				}
				results = append(results, entities.BookingResult{
					ItemID: itemID,
					OK:     false,
					Error:  code,
				})
				continue
			}

			bookingID := id
			results = append(results, entities.BookingResult{
				ItemID:    itemID,
				OK:        true,
				BookingID: &bookingID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// MarkCollected - водитель забрал предмет.
func (b *Booking) MarkCollected(ctx context.Context, bookingID int64) error {
	return b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		// повторный вызов не должен затирать чужие конкурентные обновления
		if current.Status.IsTerminal() {
			return ErrBookingAlreadyTerminal
		}

		_, err = b.repository.UpdateStatus(ctx, bookingID, entities.BookingCompleted)
		if err != nil {
			return fmt.Errorf("complete booking: %w", err)
		}

		collected := entities.ItemCollected
		_, err = b.itemService.UpdateItem(ctx, entities.ItemModify{
			ID:     &current.ItemID,
			Status: &collected,
		})
		if err != nil {
			return fmt.Errorf("update item status: %w", err)
		}
		return nil
	})
}

// MarkRejected - водитель отказался забирать предмет (не подошёл по состоянию и т.п.).
func (b *Booking) MarkRejected(ctx context.Context, bookingID int64, reason string) error {
	return b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrBookingAlreadyTerminal
		}

		_, err = b.repository.UpdateStatus(ctx, bookingID, entities.BookingCancelled)
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		rejected := entities.ItemRejected
		_, err = b.itemService.UpdateItem(ctx, entities.ItemModify{
			ID:     &current.ItemID,
			Status: &rejected,
		})
		if err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

		err = b.itemService.ClearCollectionFields(ctx, []int64{current.ItemID})
		if err != nil {
			return fmt.Errorf("clear item collection fields: %w", err)
		}
		return nil
	})
}

// Cancel - административная отмена без семантики отказа: предмет остаётся
// в обороте. Статус предмета трогаем только если он scheduled.
func (b *Booking) Cancel(ctx context.Context, bookingID int64) error {
	return b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrBookingAlreadyTerminal
		}

		_, err = b.repository.UpdateStatus(ctx, bookingID, entities.BookingCancelled)
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		item, err := b.repository.GetItemForBooking(ctx, current.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.Status == entities.ItemScheduled {
			approved := entities.ItemApproved
			_, err = b.itemService.UpdateItem(ctx, entities.ItemModify{
				ID:     &current.ItemID,
				Status: &approved,
			})
			if err != nil {
				return fmt.Errorf("revert item status: %w", err)
			}
		}

		err = b.itemService.ClearCollectionFields(ctx, []int64{current.ItemID})
		if err != nil {
			return fmt.Errorf("clear item collection fields: %w", err)
		}
		return nil
	})
}

// ExpireOverdueBookings отменяет активные брони с прошедшей датой вывоза
// и сбрасывает поля вывоза у их предметов. Вызывается фоновой задачей.
func (b *Booking) ExpireOverdueBookings(ctx context.Context) (int64, error) {
	today := time.Now().UTC().Format("2006-01-02")

	var expired int64
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		itemIDs, err := b.repository.CancelActiveBookingsBefore(ctx, today)
		if err != nil {
			return fmt.Errorf("cancel overdue bookings: %w", err)
		}

		err = b.itemService.ClearCollectionFields(ctx, itemIDs)
		if err != nil {
			return fmt.Errorf("clear item collection fields: %w", err)
		}

		expired = int64(len(itemIDs))
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire timed out: %w", err)
		}
		return 0, err
	}
	return expired, nil
}

// bookOne проверяет три предусловия (владение/существование, approved,
// отсутствие активной брони) и вставляет бронь. Статус предмета намеренно
// остаётся approved: признак "есть активная бронь" живёт в таблице bookings,
// а не в статусе предмета.
func (b *Booking) bookOne(ctx context.Context, donorID, itemID int64, date string, slot entities.TimeSlot) (int64, error) {
	item, err := b.repository.GetItemForBooking(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if item.DonorID != donorID {
		return 0, ErrNotOwner
	}
	if item.Status != entities.ItemApproved {
		return 0, ErrItemNotApproved
	}

	hasActive, err := b.repository.HasActiveBooking(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("check active booking: %w", err)
	}
	if hasActive {
		return 0, ErrAlreadyBooked
	}

	bookingType := entities.BookingCollection
	status := entities.BookingPending
	created, err := b.repository.Create(ctx, entities.BookingModify{
		ItemID:        &itemID,
		Type:          &bookingType,
		ScheduledDate: &date,
		TimeSlot:      &slot,
		Status:        &status,
	})
	if err != nil {
		return 0, err
	}

	_, err = b.itemService.UpdateItem(ctx, entities.ItemModify{
		ID:             &itemID,
		CollectionDate: &date,
		TimeSlot:       &slot,
	})
	if err != nil {
		return 0, fmt.Errorf("set item collection fields: %w", err)
	}

	return created.ID, nil
}

func (b *Booking) checkSlotOpen(ctx context.Context, date string, slot entities.TimeSlot) error {
	slots, err := b.availabilityService.GetAvailability(ctx, date)
	if err != nil {
		return fmt.Errorf("get availability: %w", err)
	}
	for _, s := range slots {
		if s.Slot != slot {
			continue
		}
		if s.Blocked || s.Available <= 0 {
			return ErrSlotUnavailable
		}
		return nil
	}
	return ErrInvalidSlot
}

// bookingErrorCode переводит конфликт одного предмета в код для массива
// результатов. Неизвестные ошибки считаются ошибками хранилища и откатывают
// всю партию.
func bookingErrorCode(err error) (entities.BookingErrorCode, bool) {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNotOwner):
		return entities.BookingErrNotFoundOrNotOwner, true
	case errors.Is(err, ErrItemNotApproved):
		return entities.BookingErrNotApproved, true
	case errors.Is(err, ErrAlreadyBooked):
		return entities.BookingErrAlreadyBooked, true
	default:
		return "", false
	}
}
