package admin_collections_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/handlers/rest/dto"
	"service/internal/service/booking"
	"service/pkg/logger"
)

const actionCancel = "cancel"

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
	var actionDTO dto.AdminCollectionAction
	err := json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if actionDTO.Action != actionCancel || actionDTO.BookingID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Cancel(r.Context(), actionDTO.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrBookingAlreadyTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OkResponse{
		OK: true,
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
