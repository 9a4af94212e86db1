package entities

type TimeSlot string

const (
	SlotMorning   TimeSlot = "9-12"
	SlotAfternoon TimeSlot = "12-15"
	SlotEvening   TimeSlot = "15-18"
)

func (s TimeSlot) String() string {
	return string(s)
}

// SlotAvailability - снимок доступности одного слота на конкретную дату.
type SlotAvailability struct {
	Slot      TimeSlot
	Capacity  int64
	Used      int64
	Available int64
	Blocked   bool
}

func (s *SlotAvailability) IsFull() bool {
	return s.Blocked || s.Available <= 0
}
