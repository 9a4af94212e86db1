package trucks_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/schedule"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var truckDTO dto.TruckUpdate
	err := json.NewDecoder(r.Body).Decode(&truckDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModify := entities.TruckModify{
		ID: &truckDTO.ID,
	}

	// Опциональные параметры
	if truckDTO.Name != nil {
		truckModify.Name = truckDTO.Name
	}
	if truckDTO.CapacityPerSlot != nil {
		truckModify.CapacityPerSlot = truckDTO.CapacityPerSlot
	}
	if truckDTO.Active != nil {
		truckModify.Active = truckDTO.Active
	}

	truck, err := h.service.UpdateTruck(r.Context(), truckModify)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidTruckName),
			errors.Is(err, schedule.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Truck{
		ID:              truck.ID,
		Name:            truck.Name,
		CapacityPerSlot: truck.CapacityPerSlot,
		Active:          truck.Active,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
