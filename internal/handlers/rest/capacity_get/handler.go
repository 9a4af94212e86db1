package capacity_get

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
	overrides, err := h.service.ListOverrides(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.CapacityOverridesResponse{
		Overrides: make([]dto.CapacityOverride, 0, len(overrides)),
	}
	for _, override := range overrides {
		response.Overrides = append(response.Overrides, dto.CapacityOverride{
			ID:       override.ID,
			Date:     override.Date,
			TimeSlot: override.TimeSlot.String(),
			Capacity: override.Capacity,
		})
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
