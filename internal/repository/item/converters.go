package item

import "service/internal/entities"

func ToDomain(i *ItemDB) *entities.Item {
	if i == nil {
		return nil
	}
	item := &entities.Item{
		ID:             i.ID,
		DonorID:        i.DonorID,
		Name:           i.Name,
		Category:       i.Category,
		Condition:      i.Condition,
		Status:         entities.ItemStatusType(i.Status),
		CollectionDate: i.CollectionDate,
		ImageURL:       i.ImageURL,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	if i.TimeSlot != nil {
		slot := entities.TimeSlot(*i.TimeSlot)
		item.TimeSlot = &slot
	}
	return item
}

func ToDomainList(items []ItemDB) []entities.Item {
	result := make([]entities.Item, 0, len(items))
	for i := range items {
		result = append(result, *ToDomain(&items[i]))
	}
	return result
}

func FromDomainModify(i *entities.ItemModify) *ItemModifyDB {
	if i == nil {
		return nil
	}
	itemModifyDB := &ItemModifyDB{
		ID:             i.ID,
		DonorID:        i.DonorID,
		Name:           i.Name,
		Category:       i.Category,
		Condition:      i.Condition,
		CollectionDate: i.CollectionDate,
		ImageURL:       i.ImageURL,
	}
	if i.Status != nil {
		status := i.Status.String()
		itemModifyDB.Status = &status
	}
	if i.TimeSlot != nil {
		slot := i.TimeSlot.String()
		itemModifyDB.TimeSlot = &slot
	}
	return itemModifyDB
}
