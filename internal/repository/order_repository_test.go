package repository

import (
	"context"
	"testing"
	"time"

	"snack-depot/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestOrder persists an order with the given line items.
func createTestOrder(t *testing.T, repo OrderRepository, customer string, createdAt time.Time, items ...model.OrderItem) *model.Order {
	ctx := context.Background()

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    customer,
		CustomerAddress: "12 MG Road, Rajkot",
		CustomerPhone:   "+91 98765 43210",
		Status:          model.StatusPending,
		CreatedAt:       createdAt,
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
		order.Total += items[i].Price * float64(items[i].Quantity)
	}
	order.Items = items

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	return order
}

func TestOrderRepository_CreateAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	created := createTestOrder(t, repo, "Ramesh Patel", time.Now(),
		model.OrderItem{FoodItemID: "f1", Name: "Masala Gathiya", Price: 100, Quantity: 2},
		model.OrderItem{FoodItemID: "f2", Name: "Ratlami Sev", Price: 50, Quantity: 1},
	)

	order, items, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, created.ID, order.ID)
	assert.Equal(t, "Ramesh Patel", order.CustomerName)
	assert.Equal(t, 250.0, order.Total)
	assert.Equal(t, model.StatusPending, order.Status)
	require.Len(t, items, 2)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	order, items, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Nil(t, items)
}

func TestOrderRepository_GetAll_NewestFirst(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	base := time.Now().Add(-time.Hour)
	createTestOrder(t, repo, "First", base,
		model.OrderItem{FoodItemID: "f1", Name: "A", Price: 10, Quantity: 1})
	createTestOrder(t, repo, "Second", base.Add(time.Minute),
		model.OrderItem{FoodItemID: "f2", Name: "B", Price: 20, Quantity: 1})
	createTestOrder(t, repo, "Third", base.Add(2*time.Minute),
		model.OrderItem{FoodItemID: "f3", Name: "C", Price: 30, Quantity: 1})

	orders, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "Third", orders[0].CustomerName)
	assert.Equal(t, "Second", orders[1].CustomerName)
	assert.Equal(t, "First", orders[2].CustomerName)
	for _, order := range orders {
		assert.Len(t, order.Items, 1)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	created := createTestOrder(t, repo, "Ramesh Patel", time.Now(),
		model.OrderItem{FoodItemID: "f1", Name: "Masala Gathiya", Price: 100, Quantity: 2})

	found, err := repo.UpdateStatus(context.Background(), created.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, found)

	// And back again: the store enforces no transition graph.
	found, err = repo.UpdateStatus(context.Background(), created.ID, model.StatusPending)
	require.NoError(t, err)
	assert.True(t, found)

	order, items, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, order.Status)
	// Total and line items are untouched by status updates.
	assert.Equal(t, 200.0, order.Total)
	assert.Len(t, items, 1)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	found, err := repo.UpdateStatus(context.Background(), uuid.New(), model.StatusCompleted)
	require.NoError(t, err)
	assert.False(t, found)

	// A missing id must never create a record.
	assert.Equal(t, 0, countRows(t, pool, "SELECT COUNT(*) FROM orders"))
}

func TestOrderRepository_Delete_CascadesToItems(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	created := createTestOrder(t, repo, "Ramesh Patel", time.Now(),
		model.OrderItem{FoodItemID: "f1", Name: "A", Price: 10, Quantity: 1},
		model.OrderItem{FoodItemID: "f2", Name: "B", Price: 20, Quantity: 2},
		model.OrderItem{FoodItemID: "f3", Name: "C", Price: 30, Quantity: 3},
	)

	require.Equal(t, 3, countRows(t, pool, "SELECT COUNT(*) FROM order_items WHERE order_id = $1", created.ID))

	deleted, err := repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, pool, "SELECT COUNT(*) FROM order_items WHERE order_id = $1", created.ID))

	deleted, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// Order items reference catalog entries weakly: deleting the food item
// leaves historical orders intact.
func TestOrderRepository_LineItemsSurviveCatalogDeletion(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	foodRepo := NewFoodItemRepository(pool, zerolog.Nop())
	orderRepo := NewOrderRepository(pool, zerolog.Nop())

	item := createTestItem(t, foodRepo, "Masala Gathiya", 450.00)
	order := createTestOrder(t, orderRepo, "Ramesh Patel", time.Now(),
		model.OrderItem{FoodItemID: item.ID.String(), Name: item.Name, Price: item.Price, Quantity: 1})

	deleted, err := foodRepo.Delete(context.Background(), item.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	stored, items, err := orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID.String(), items[0].FoodItemID)
	assert.Equal(t, 450.00, items[0].Price)
}
