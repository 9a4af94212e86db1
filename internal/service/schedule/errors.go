package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidSlot           = errors.New("invalid time slot")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidTruckName      = errors.New("invalid truck name")

	ErrBlackoutNotFound = errors.New("blackout not found")
	ErrOverrideNotFound = errors.New("capacity override not found")
	ErrTruckNotFound    = errors.New("truck not found")
)
