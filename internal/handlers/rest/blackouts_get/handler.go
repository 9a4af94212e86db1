package blackouts_get

import (
	"encoding/json"
	"net/http"

	"service/internal/handlers/rest/dto"
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
	blackouts, err := h.service.ListBlackouts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.BlackoutsResponse{
		Blackouts: make([]dto.Blackout, 0, len(blackouts)),
	}
	for _, blackout := range blackouts {
		blackoutDTO := dto.Blackout{
			ID:     blackout.ID,
			Date:   blackout.Date,
			Reason: blackout.Reason,
		}
		if blackout.TimeSlot != nil {
			slot := blackout.TimeSlot.String()
			blackoutDTO.TimeSlot = &slot
		}
		response.Blackouts = append(response.Blackouts, blackoutDTO)
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
