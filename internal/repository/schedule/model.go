package schedule

import "time"

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

type TruckDB struct {
	ID              int64
	Name            string
	CapacityPerSlot int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TruckModifyDB struct {
	ID              *int64
	Name            *string
	CapacityPerSlot *int64
	Active          *bool
}
