package blackouts_post

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
	var blackoutDTO dto.BlackoutCreate
	err := json.NewDecoder(r.Body).Decode(&blackoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var slot *entities.TimeSlot
	if blackoutDTO.TimeSlot != nil {
		s := entities.TimeSlot(*blackoutDTO.TimeSlot)
		slot = &s
	}

	blackout, err := h.service.CreateBlackout(r.Context(), blackoutDTO.Date, slot, blackoutDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidSlot):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Blackout{
		ID:     blackout.ID,
		Date:   blackout.Date,
		Reason: blackout.Reason,
	}
	if blackout.TimeSlot != nil {
		s := blackout.TimeSlot.String()
		response.TimeSlot = &s
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
