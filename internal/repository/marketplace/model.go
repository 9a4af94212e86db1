package marketplace

import "time"

type ReservationDB struct {
	ID         int64
	ItemID     int64
	CustomerID int64
	Status     string
	CreatedAt  time.Time
}

type OrderDB struct {
	ID         int64
	CustomerID int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
