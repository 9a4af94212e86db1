package marketplace

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrItemNotFound        = errors.New("item not found")
	ErrItemNotAvailable    = errors.New("item not available for reservation")
	ErrAlreadyReserved     = errors.New("item already reserved")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotReservationOwner = errors.New("reservation belongs to another customer")
	ErrNotReserved         = errors.New("item not reserved by this customer")
	ErrOrderNotFound       = errors.New("order not found")
	ErrIllegalTransition   = errors.New("illegal order status transition")
)
