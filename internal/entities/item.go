package entities

import "time"

type Item struct {
	ID             int64
	DonorID        int64
	Name           string
	Category       string
	Condition      string
	Status         ItemStatusType
	CollectionDate *string
	TimeSlot       *TimeSlot
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ItemStatusType string

const (
	ItemPending   ItemStatusType = "pending"
	ItemApproved  ItemStatusType = "approved"
	ItemRejected  ItemStatusType = "rejected"
	ItemScheduled ItemStatusType = "scheduled"
	ItemReserved  ItemStatusType = "reserved"
	ItemCollected ItemStatusType = "collected"
)

func (s ItemStatusType) String() string {
	return string(s)
}

// itemTransitions - единственное место где определены допустимые переходы
// статуса предмета. Проверка через CanTransition, а не сравнение строк по месту.
var itemTransitions = map[ItemStatusType][]ItemStatusType{
	ItemPending:   {ItemApproved, ItemRejected},
	ItemApproved:  {ItemRejected, ItemScheduled, ItemReserved, ItemCollected},
	ItemRejected:  {ItemApproved},
	ItemScheduled: {ItemApproved, ItemRejected, ItemCollected},
	ItemReserved:  {ItemApproved},
	ItemCollected: {},
}

func (s ItemStatusType) CanTransition(to ItemStatusType) bool {
	for _, allowed := range itemTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type ItemModify struct {
	ID             *int64
	DonorID        *int64
	Name           *string
	Category       *string
	Condition      *string
	Status         *ItemStatusType
	CollectionDate *string
	TimeSlot       *TimeSlot
	ImageURL       *string
}
