package entities

import "time"

// Blackout - запрет бронирования на дату. TimeSlot == nil блокирует весь день.
type Blackout struct {
	ID        int64
	Date      string
	TimeSlot  *TimeSlot
	Reason    string
	CreatedAt time.Time
}

func (b *Blackout) IsWholeDay() bool {
	return b.TimeSlot == nil
}

// CapacityOverride - заданная админом вместимость слота на дату,
// перекрывает суммарную вместимость активных машин.
type CapacityOverride struct {
	ID        int64
	Date      string
	TimeSlot  TimeSlot
	Capacity  int64
	CreatedAt time.Time
}

type Truck struct {
	ID              int64
	Name            string
	CapacityPerSlot int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TruckModify struct {
	ID              *int64
	Name            *string
	CapacityPerSlot *int64
	Active          *bool
}
