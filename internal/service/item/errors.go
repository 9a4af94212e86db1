package item

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidCondition      = errors.New("invalid condition")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrItemNotFound      = errors.New("item not found")
	ErrIllegalTransition = errors.New("illegal item status transition")
)
