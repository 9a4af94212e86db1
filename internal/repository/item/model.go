package item

import "time"

type ItemDB struct {
	ID             int64
	DonorID        int64
	Name           string
	Category       string
	Condition      string
	Status         string
	CollectionDate *string
	TimeSlot       *string
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ItemModifyDB struct {
	ID             *int64
	DonorID        *int64
	Name           *string
	Category       *string
	Condition      *string
	Status         *string
	CollectionDate *string
	TimeSlot       *string
	ImageURL       *string
}
