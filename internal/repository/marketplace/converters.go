package marketplace

import "service/internal/entities"

func ReservationToDomain(r *ReservationDB) *entities.Reservation {
	if r == nil {
		return nil
	}
	return &entities.Reservation{
		ID:         r.ID,
		ItemID:     r.ItemID,
		CustomerID: r.CustomerID,
		Status:     entities.ReservationStatusType(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

func OrderToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     entities.OrderStatusType(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
