package service

import (
	"context"

	"snack-depot/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for catalog management. Mutations
// are gated behind the admin shared secret.
type CatalogService interface {
	// List retrieves all food items with their galleries.
	List(ctx context.Context) ([]model.FoodItem, error)

	// Get retrieves a single food item by ID with its gallery.
	Get(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)

	// Create persists a new food item and its gallery images.
	Create(ctx context.Context, req *model.CreateFoodItemRequest) (*model.FoodItem, error)

	// Update applies a typed patch to the mutable fields of a food item.
	// The gallery is never altered through this path.
	Update(ctx context.Context, id uuid.UUID, patch *model.FoodItemPatch, secret string) (*model.FoodItem, error)

	// Delete removes a food item and its gallery.
	Delete(ctx context.Context, id uuid.UUID, secret string) error
}

// OrderService defines operations for order management. Note: order
// mutations are intentionally not gated behind the admin secret; the
// storefront places orders anonymously.
type OrderService interface {
	// List retrieves all orders with line items, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// Get retrieves an order by its ID with its line items.
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Create places a new order. The total is computed server-side and
	// each line item is a snapshot of the catalog entry at order time.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// UpdateStatus moves an order to a new status. Any status may move
	// to any other; only membership in the enum is enforced.
	UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*model.Order, error)

	// Delete removes an order and its line items.
	Delete(ctx context.Context, id uuid.UUID) error
}
