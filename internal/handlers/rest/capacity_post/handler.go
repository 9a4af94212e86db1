package capacity_post

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
	var overrideDTO dto.CapacityOverrideCreate
	err := json.NewDecoder(r.Body).Decode(&overrideDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	override, err := h.service.CreateOverride(
		r.Context(),
		overrideDTO.Date,
		entities.TimeSlot(overrideDTO.TimeSlot),
		overrideDTO.Capacity,
	)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidSlot),
			errors.Is(err, schedule.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CapacityOverride{
		ID:       override.ID,
		Date:     override.Date,
		TimeSlot: override.TimeSlot.String(),
		Capacity: override.Capacity,
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
