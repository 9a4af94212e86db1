package availability

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Availability struct {
	repository Repository
	schedule   SlotSchedule
}

func New(repository Repository, schedule SlotSchedule) *Availability {
	return &Availability{
		repository: repository,
		schedule:   schedule,
	}
}

// GetAvailability считает доступность каждого слота на дату. Чтение без
// побочных эффектов. Уже созданные брони на дату, попавшую под blackout,
// не отменяются - blackout побеждает только в отображении.
func (a *Availability) GetAvailability(ctx context.Context, date string) ([]entities.SlotAvailability, error) {
	if !isValidDate(date) {
		return nil, ErrInvalidDate
	}

	blackouts, err := a.repository.ListBlackouts(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}

	wholeDayBlocked := false
	blockedSlots := make(map[entities.TimeSlot]bool)
	for _, b := range blackouts {
		if b.IsWholeDay() {
			wholeDayBlocked = true
			continue
		}
		blockedSlots[*b.TimeSlot] = true
	}

	baseCapacity, err := a.repository.SumActiveTruckCapacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum truck capacity: %w", err)
	}

	overrides, err := a.repository.ListOverrides(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	overrideBySlot := make(map[entities.TimeSlot]int64, len(overrides))
	for _, o := range overrides {
		overrideBySlot[o.TimeSlot] = o.Capacity
	}

	usedBySlot, err := a.repository.CountActiveBookingsBySlot(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	slots := a.schedule.Slots()
	result := make([]entities.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		capacity := baseCapacity
		if override, ok := overrideBySlot[slot]; ok {
			capacity = override
		}

		blocked := wholeDayBlocked || blockedSlots[slot] || capacity <= 0
		if blocked {
			result = append(result, entities.SlotAvailability{
				Slot:      slot,
				Capacity:  capacity,
				Used:      0,
				Available: 0,
				Blocked:   true,
			})
			continue
		}

		used := usedBySlot[slot]
		available := capacity - used
		if available < 0 {
			available = 0
		}

		result = append(result, entities.SlotAvailability{
			Slot:      slot,
			Capacity:  capacity,
			Used:      used,
			Available: available,
			Blocked:   false,
		})
	}

	return result, nil
}
