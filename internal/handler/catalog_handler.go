package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"snack-depot/internal/model"
	"snack-depot/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CatalogHandler handles food-item HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// GetAll handles GET /api/food-items requests.
func (h *CatalogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/food-items requests.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetByID handles GET /api/food-items/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/food-items/{id} requests. The admin secret is
// taken from the X-Admin-Secret header.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var patch model.FoodItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.Update(r.Context(), id, &patch, r.Header.Get(AdminSecretHeader))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/food-items/{id} requests.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, r.Header.Get(AdminSecretHeader)); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Food item deleted successfully"})
}

// itemID extracts and parses the food item ID from the request path.
func (h *CatalogHandler) itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/food-items/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Food item ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid food item ID format", h.logger)
		return uuid.Nil, false
	}

	return id, true
}
