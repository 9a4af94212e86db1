package entities

import "time"

type Booking struct {
	ID            int64
	ItemID        int64
	Type          BookingType
	ScheduledDate string
	TimeSlot      TimeSlot
	Status        BookingStatusType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookingType string

const BookingCollection BookingType = "collection"

func (t BookingType) String() string {
	return string(t)
}

type BookingStatusType string

const (
	BookingPending   BookingStatusType = "pending"
	BookingScheduled BookingStatusType = "scheduled"
	BookingConfirmed BookingStatusType = "confirmed"
	BookingCompleted BookingStatusType = "completed"
	BookingCancelled BookingStatusType = "cancelled"
)

func (s BookingStatusType) String() string {
	return string(s)
}

// IsActive - активная бронь блокирует повторное бронирование предмета.
// Терминальные статусы (completed/cancelled) не считаются.
func (s BookingStatusType) IsActive() bool {
	switch s {
	case BookingPending, BookingScheduled, BookingConfirmed:
		return true
	default:
		return false
	}
}

func (s BookingStatusType) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type BookingModify struct {
	ID            *int64
	ItemID        *int64
	Type          *BookingType
	ScheduledDate *string
	TimeSlot      *TimeSlot
	Status        *BookingStatusType
}

// BookingResult - поэлементный результат массового бронирования.
type BookingResult struct {
	ItemID    int64
	OK        bool
	BookingID *int64
	Error     BookingErrorCode
}

type BookingErrorCode string

const (
	BookingErrNotFoundOrNotOwner BookingErrorCode = "not_found_or_not_owner"
	BookingErrNotApproved        BookingErrorCode = "not_approved"
	BookingErrAlreadyBooked      BookingErrorCode = "already_booked"
)

func (c BookingErrorCode) String() string {
	return string(c)
}
