package schedule

import "service/internal/entities"

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

func TruckToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}
	return &entities.Truck{
		ID:              t.ID,
		Name:            t.Name,
		CapacityPerSlot: t.CapacityPerSlot,
		Active:          t.Active,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromDomainTruckModify(t *entities.TruckModify) *TruckModifyDB {
	if t == nil {
		return nil
	}
	return &TruckModifyDB{
		ID:              t.ID,
		Name:            t.Name,
		CapacityPerSlot: t.CapacityPerSlot,
		Active:          t.Active,
	}
}
