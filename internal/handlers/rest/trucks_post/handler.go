package trucks_post

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
	var truckDTO dto.TruckCreate
	err := json.NewDecoder(r.Body).Decode(&truckDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModify := entities.TruckModify{
		Name:            &truckDTO.Name,
		CapacityPerSlot: &truckDTO.CapacityPerSlot,
		Active:          truckDTO.Active,
	}

	id, err := h.service.CreateTruck(r.Context(), truckModify)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidTruckName),
			errors.Is(err, schedule.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TruckCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
