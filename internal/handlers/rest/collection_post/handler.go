package collection_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/booking"
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

	var collectionDTO dto.CollectionCreate
	err := json.NewDecoder(r.Body).Decode(&collectionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingID, err := h.service.BookSingle(
		r.Context(),
		principal.DonorID,
		collectionDTO.ItemID,
		collectionDTO.Date,
		entities.TimeSlot(collectionDTO.TimeSlot),
	)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidItemID),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidSlot),
			errors.Is(err, booking.ErrItemNotApproved),
			errors.Is(err, booking.ErrAlreadyBooked):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, booking.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrSlotUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CollectionCreateResponse{
		BookingID: bookingID,
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
