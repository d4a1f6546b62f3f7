package repository

import (
	"context"

	"snack-depot/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FoodItemRepository defines the interface for catalog data access operations.
type FoodItemRepository interface {
	// GetAll retrieves all food items with their image galleries, in
	// insertion order.
	GetAll(ctx context.Context) ([]model.FoodItem, error)

	// GetByID retrieves a single food item with its gallery. Returns
	// (nil, nil) when no record has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)

	// ExistsByName reports whether a food item with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateFoodItem inserts a new food item within the provided transaction.
	CreateFoodItem(ctx context.Context, tx pgx.Tx, item *model.FoodItem) error

	// CreateImages inserts gallery images within the provided transaction.
	CreateImages(ctx context.Context, tx pgx.Tx, images []model.Image) error

	// Update writes the mutable fields of a food item. Returns false
	// when no record has the id.
	Update(ctx context.Context, item *model.FoodItem) (bool, error)

	// Delete removes a food item; owned images go with it via the
	// cascade constraint. Returns false when no record has the id.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// GetAll retrieves all orders with their line items, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID along with its items.
	// Returns (nil, nil, nil) when no record has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// UpdateStatus writes the status field of an order. Returns false
	// when no record has the id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error)

	// Delete removes an order; line items go with it via the cascade
	// constraint. Returns false when no record has the id.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
