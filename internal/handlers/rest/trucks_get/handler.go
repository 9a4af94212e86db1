package trucks_get

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
	trucks, err := h.service.ListTrucks(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TrucksResponse{
		Trucks: make([]dto.Truck, 0, len(trucks)),
	}
	for _, truck := range trucks {
		response.Trucks = append(response.Trucks, dto.Truck{
			ID:              truck.ID,
			Name:            truck.Name,
			CapacityPerSlot: truck.CapacityPerSlot,
			Active:          truck.Active,
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
