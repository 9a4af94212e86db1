package booking

import "time"

type BookingDB struct {
	ID            int64
	ItemID        int64
	Type          string
	ScheduledDate string
	TimeSlot      string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookingModifyDB struct {
	ID            *int64
	ItemID        *int64
	Type          *string
	ScheduledDate *string
	TimeSlot      *string
	Status        *string
}

type BlackoutDB struct {
	ID        int64
	Date      string
	TimeSlot  *string
	Reason    string
	CreatedAt time.Time
}

type CapacityOverrideDB struct {
	ID        int64
	Date      string
	TimeSlot  string
	Capacity  int64
	CreatedAt time.Time
}
