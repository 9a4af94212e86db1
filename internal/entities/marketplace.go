package entities

import "time"

type Reservation struct {
	ID         int64
	ItemID     int64
	CustomerID int64
	Status     ReservationStatusType
	CreatedAt  time.Time
}

type ReservationStatusType string

const (
	ReservationActive    ReservationStatusType = "active"
	ReservationReleased  ReservationStatusType = "released"
	ReservationConverted ReservationStatusType = "converted"
)

func (s ReservationStatusType) String() string {
	return string(s)
}

type Order struct {
	ID         int64
	CustomerID int64
	Status     OrderStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatusType) CanTransition(to OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type OrderItem struct {
	OrderID int64
	ItemID  int64
}

// OrderMeta - пары ключ/значение заказа (поля адреса доставки и т.п.).
type OrderMeta struct {
	OrderID int64
	Key     string
	Value   string
}
