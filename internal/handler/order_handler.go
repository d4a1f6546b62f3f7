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

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /api/orders/{id} requests. Status is the
// only mutable field of an existing order.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// orderID extracts and parses the order ID from the request path.
func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Order ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid order ID format", h.logger)
		return uuid.Nil, false
	}

	return id, true
}
