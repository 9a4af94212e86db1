package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidSlot           = errors.New("invalid time slot")
	ErrInvalidItemID         = errors.New("invalid item id")

	ErrItemNotFound           = errors.New("item not found")
	ErrNotOwner               = errors.New("item belongs to another donor")
	ErrItemNotApproved        = errors.New("item not approved")
	ErrAlreadyBooked          = errors.New("item already booked")
	ErrSlotUnavailable        = errors.New("slot unavailable")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyTerminal = errors.New("booking already in terminal status")
)
