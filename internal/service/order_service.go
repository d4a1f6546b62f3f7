package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"snack-depot/internal/model"
	"snack-depot/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders with line items, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, model.ErrStorageUnavailable
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

// Get retrieves an order by its ID with its line items.
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, model.ErrStorageUnavailable
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if items == nil {
		items = []model.OrderItem{}
	}
	order.Items = items

	return order, nil
}

// Create places a new order. Each line item is snapshotted from the
// request, the total is computed here, and the order starts PENDING.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		Status:          model.StatusPending,
		CreatedAt:       time.Now(),
	}

	// Total is fixed at creation time; status changes never recompute it.
	var total float64
	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		total += item.Price * float64(item.Quantity)
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			FoodItemID: item.FoodItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}
	order.Total = total
	order.Items = orderItems

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, model.ErrStorageUnavailable
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.repo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, model.ErrStorageUnavailable
	}

	if err = s.repo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, model.ErrStorageUnavailable
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, model.ErrStorageUnavailable
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(orderItems)).
		Float64("total", order.Total).
		Msg("order created")

	return order, nil
}

// UpdateStatus moves an order to a new status. The transition graph is
// deliberately permissive: any status may move to any other, including
// back out of COMPLETED or CANCELLED.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*model.Order, error) {
	status, err := model.ParseOrderStatus(rawStatus)
	if err != nil {
		s.logger.Warn().Str("order_id", id.String()).Str("status", rawStatus).Msg("invalid status value")
		return nil, err
	}

	found, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, model.ErrStorageUnavailable
	}

	if !found {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return s.Get(ctx, id)
}

// Delete removes an order and its line items.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return model.ErrStorageUnavailable
	}

	if !deleted {
		return model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	return nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.CreateOrderRequest) error {
	if req == nil {
		return model.NewValidationError("Order request is required")
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return model.NewValidationError("Customer name must not be empty")
	}

	if strings.TrimSpace(req.CustomerAddress) == "" {
		return model.NewValidationError("Customer address must not be empty")
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return model.NewValidationError("Customer phone must not be empty")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			return model.NewValidationError(fmt.Sprintf("Item %d: name must not be empty", i))
		}

		if item.Price < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Float64("price", item.Price).
				Msg("negative item price")
			return model.ErrNegativePrice
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("food_item_id", item.FoodItemID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
