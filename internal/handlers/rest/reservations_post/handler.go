package reservations_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/marketplace"
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
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reservationDTO dto.ReservationCreate
	err := json.NewDecoder(r.Body).Decode(&reservationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reservation, err := h.service.ReserveItem(r.Context(), principal.UserID, reservationDTO.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, marketplace.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, marketplace.ErrItemNotAvailable),
			errors.Is(err, marketplace.ErrAlreadyReserved):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Reservation{
		ID:         reservation.ID,
		ItemID:     reservation.ItemID,
		CustomerID: reservation.CustomerID,
		Status:     reservation.Status.String(),
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
