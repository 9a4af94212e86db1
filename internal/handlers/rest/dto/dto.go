// Package dto - JSON-формы запросов и ответов REST API.
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type OkResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error   string  `json:"error"`
	Message *string `json:"message,omitempty"`
}

type SlotAvailability struct {
	Slot      string `json:"slot"`
	Capacity  int64  `json:"capacity"`
	Used      int64  `json:"used"`
	Available int64  `json:"available"`
	Blocked   bool   `json:"blocked"`
}

type SlotsResponse struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}

type CollectionCreate struct {
	ItemID   int64  `json:"itemId"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

type CollectionCreateResponse struct {
	BookingID int64 `json:"bookingId"`
}

type CollectionsBulkCreate struct {
	ItemIDs  []int64 `json:"itemIds"`
	Date     string  `json:"date"`
	TimeSlot string  `json:"time_slot"`
}

type BookingResult struct {
	ItemID    int64  `json:"itemId"`
	OK        bool   `json:"ok"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type CollectionsBulkResponse struct {
	Results []BookingResult `json:"results"`
}

type AdminCollectionAction struct {
	Action    string `json:"action"`
	BookingID int64  `json:"bookingId"`
}

type BlackoutCreate struct {
	Date     string  `json:"date"`
	TimeSlot *string `json:"time_slot,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

type Blackout struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	TimeSlot *string `json:"time_slot,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

type BlackoutsResponse struct {
	Blackouts []Blackout `json:"blackouts"`
}

type CapacityOverrideCreate struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Capacity int64  `json:"capacity"`
}

type CapacityOverride struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Capacity int64  `json:"capacity"`
}

type CapacityOverridesResponse struct {
	Overrides []CapacityOverride `json:"overrides"`
}

type DeleteByID struct {
	ID int64 `json:"id"`
}

type ItemCreate struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	ImageURL  string `json:"image_url,omitempty"`
}

type ItemCreateResponse struct {
	ID int64 `json:"id"`
}

type Item struct {
	ID             int64   `json:"id"`
	DonorID        int64   `json:"donorId"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Condition      string  `json:"condition"`
	Status         string  `json:"status"`
	CollectionDate *string `json:"collection_date,omitempty"`
	TimeSlot       *string `json:"time_slot,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
}

type AdminItemAction struct {
	Action string `json:"action"`
	ItemID int64  `json:"itemId"`
}

type DriverCollectionAction struct {
	Action    string  `json:"action"`
	BookingID int64   `json:"bookingId"`
	Reason    *string `json:"reason,omitempty"`
}

type ReservationCreate struct {
	ItemID int64 `json:"itemId"`
}

type Reservation struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"itemId"`
	CustomerID int64  `json:"customerId"`
	Status     string `json:"status"`
}

type CheckoutCreate struct {
	ItemIDs []int64           `json:"itemIds"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type Order struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	Status     string `json:"status"`
}

type TruckCreate struct {
	Name            string `json:"name"`
	CapacityPerSlot int64  `json:"capacity_per_slot"`
	Active          *bool  `json:"active,omitempty"`
}

type TruckUpdate struct {
	ID              int64   `json:"id"`
	Name            *string `json:"name,omitempty"`
	CapacityPerSlot *int64  `json:"capacity_per_slot,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

type TruckCreateResponse struct {
	ID int64 `json:"id"`
}

type Truck struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	CapacityPerSlot int64  `json:"capacity_per_slot"`
	Active          bool   `json:"active"`
}

type TrucksResponse struct {
	Trucks []Truck `json:"trucks"`
}
