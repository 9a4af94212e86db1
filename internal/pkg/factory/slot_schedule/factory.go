package slot_schedule

import (
	"service/internal/entities"
)

// SlotSchedule отдаёт фиксированный набор слотов дня. Количество слотов -
// вопрос конфигурации расписания, а не жёсткий лимит системы.
type SlotSchedule struct {
	slots []entities.TimeSlot
}

func New() *SlotSchedule {
	return &SlotSchedule{
		slots: []entities.TimeSlot{
			entities.SlotMorning,
			entities.SlotAfternoon,
			entities.SlotEvening,
		},
	}
}

func (s *SlotSchedule) Slots() []entities.TimeSlot {
	slots := make([]entities.TimeSlot, len(s.slots))
	copy(slots, s.slots)
	return slots
}

func (s *SlotSchedule) IsValidSlot(slot entities.TimeSlot) bool {
	for _, known := range s.slots {
		if known == slot {
			return true
		}
	}
	return false
}
