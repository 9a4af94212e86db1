package admin_items_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/item"
	"service/pkg/logger"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"
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
	var actionDTO dto.AdminItemAction
	err := json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if actionDTO.ItemID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updated *entities.Item
	switch actionDTO.Action {
	case actionApprove:
		updated, err = h.service.ApproveItem(r.Context(), actionDTO.ItemID)
	case actionReject:
		updated, err = h.service.RejectItem(r.Context(), actionDTO.ItemID)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, item.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, item.ErrIllegalTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Item{
		ID:             updated.ID,
		DonorID:        updated.DonorID,
		Name:           updated.Name,
		Category:       updated.Category,
		Condition:      updated.Condition,
		Status:         updated.Status.String(),
		CollectionDate: updated.CollectionDate,
		ImageURL:       updated.ImageURL,
	}
	if updated.TimeSlot != nil {
		slot := updated.TimeSlot.String()
		response.TimeSlot = &slot
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
