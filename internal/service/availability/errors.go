package availability

import "errors"

var ErrInvalidDate = errors.New("invalid date")
