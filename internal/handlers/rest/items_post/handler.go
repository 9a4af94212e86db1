package items_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/item"
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

	var itemDTO dto.ItemCreate
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	itemModify := entities.ItemModify{
		DonorID:   &principal.DonorID,
		Name:      &itemDTO.Name,
		Category:  &itemDTO.Category,
		Condition: &itemDTO.Condition,
	}
	if itemDTO.ImageURL != "" {
		itemModify.ImageURL = &itemDTO.ImageURL
	}

	id, err := h.service.CreateItem(r.Context(), itemModify)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrMissingRequiredFields),
			errors.Is(err, item.ErrInvalidName),
			errors.Is(err, item.ErrInvalidCategory),
			errors.Is(err, item.ErrInvalidCondition):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ItemCreateResponse{
		ID: id,
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
