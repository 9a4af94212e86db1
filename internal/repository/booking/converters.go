package booking

import "service/internal/entities"

func ToDomain(b *BookingDB) *entities.Booking {
	if b == nil {
		return nil
	}
	return &entities.Booking{
		ID:            b.ID,
		ItemID:        b.ItemID,
		Type:          entities.BookingType(b.Type),
		ScheduledDate: b.ScheduledDate,
		TimeSlot:      entities.TimeSlot(b.TimeSlot),
		Status:        entities.BookingStatusType(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromDomainModify(b *entities.BookingModify) *BookingModifyDB {
	if b == nil {
		return nil
	}
	bookingModifyDB := &BookingModifyDB{
		ID:            b.ID,
		ItemID:        b.ItemID,
		ScheduledDate: b.ScheduledDate,
	}
	if b.Type != nil {
		bookingType := b.Type.String()
		bookingModifyDB.Type = &bookingType
	}
	if b.TimeSlot != nil {
		slot := b.TimeSlot.String()
		bookingModifyDB.TimeSlot = &slot
	}
	if b.Status != nil {
		status := b.Status.String()
		bookingModifyDB.Status = &status
	}
	return bookingModifyDB
}

func BlackoutToDomain(b *BlackoutDB) *entities.Blackout {
	if b == nil {
		return nil
	}
	blackout := &entities.Blackout{
		ID:        b.ID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
	if b.TimeSlot != nil {
		slot := entities.TimeSlot(*b.TimeSlot)
		blackout.TimeSlot = &slot
	}
	return blackout
}

func OverrideToDomain(o *CapacityOverrideDB) *entities.CapacityOverride {
	if o == nil {
		return nil
	}
	return &entities.CapacityOverride{
		ID:        o.ID,
		Date:      o.Date,
		TimeSlot:  entities.TimeSlot(o.TimeSlot),
		Capacity:  o.Capacity,
		CreatedAt: o.CreatedAt,
	}
}
