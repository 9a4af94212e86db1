package collections_bulk_post

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

// ServeHTTP отвечает 201 со смешанным массивом результатов, даже если все
// предметы партии отклонены. Ошибка статусом - только когда невалиден сам запрос.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var bulkDTO dto.CollectionsBulkCreate
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	results, err := h.service.BookMany(
		r.Context(),
		principal.DonorID,
		bulkDTO.ItemIDs,
		bulkDTO.Date,
		entities.TimeSlot(bulkDTO.TimeSlot),
	)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidSlot):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrSlotUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CollectionsBulkResponse{
		Results: make([]dto.BookingResult, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results, dto.BookingResult{
			ItemID:    result.ItemID,
			OK:        result.OK,
			BookingID: result.BookingID,
			Error:     result.Error.String(),
		})
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
