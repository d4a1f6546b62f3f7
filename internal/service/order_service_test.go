package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"snack-depot/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func validOrderRequest() *model.CreateOrderRequest {
	return &model.CreateOrderRequest{
		CustomerName:    "Ramesh Patel",
		CustomerAddress: "12 MG Road, Rajkot",
		CustomerPhone:   "+91 98765 43210",
		Items: []model.OrderItemRequest{
			{FoodItemID: "f1", Name: "Masala Gathiya", Price: 100, Quantity: 2},
			{FoodItemID: "f2", Name: "Ratlami Sev", Price: 50, Quantity: 1},
		},
	}
}

func TestOrderService_Create_ComputesTotal(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := svc.Create(ctx, validOrderRequest())

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, 250.0, order.Total)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, 5*time.Second)
	require.Len(t, order.Items, 2)

	// Line items are snapshots carrying their own name and price.
	assert.Equal(t, "Masala Gathiya", order.Items[0].Name)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	assert.True(t, mockTx.committed)
	mockRepo.AssertExpectations(t)
}

// Order mutations intentionally bypass the admin gate: the storefront
// places orders anonymously, while catalog writes require the secret.
// This asymmetry mirrors the deployed behaviour.
func TestOrderMutationsAreUngated(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockRepo.On("CreateOrder", ctx, mockTx, mock.Anything).Return(nil)
	mockRepo.On("CreateOrderItems", ctx, mockTx, mock.Anything).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	// No credential anywhere in the request or the call.
	_, err := svc.Create(ctx, validOrderRequest())
	require.NoError(t, err)
}

func TestOrderService_Create_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*model.CreateOrderRequest)
		expected error
	}{
		{
			name:     "Empty items",
			mutate:   func(r *model.CreateOrderRequest) { r.Items = nil },
			expected: model.ErrEmptyOrder,
		},
		{
			name:     "Zero quantity",
			mutate:   func(r *model.CreateOrderRequest) { r.Items[0].Quantity = 0 },
			expected: model.ErrInvalidQuantity,
		},
		{
			name:     "Negative quantity",
			mutate:   func(r *model.CreateOrderRequest) { r.Items[1].Quantity = -3 },
			expected: model.ErrInvalidQuantity,
		},
		{
			name:     "Negative price",
			mutate:   func(r *model.CreateOrderRequest) { r.Items[0].Price = -1 },
			expected: model.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			svc := NewOrderService(mockRepo, logger)

			req := validOrderRequest()
			tt.mutate(req)

			order, err := svc.Create(ctx, req)

			require.Error(t, err)
			assert.Equal(t, tt.expected, err)
			assert.Nil(t, order)
			mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestOrderService_Create_EmptyCustomerFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.CreateOrderRequest)
	}{
		{name: "Empty name", mutate: func(r *model.CreateOrderRequest) { r.CustomerName = "" }},
		{name: "Whitespace name", mutate: func(r *model.CreateOrderRequest) { r.CustomerName = "   " }},
		{name: "Empty address", mutate: func(r *model.CreateOrderRequest) { r.CustomerAddress = "" }},
		{name: "Empty phone", mutate: func(r *model.CreateOrderRequest) { r.CustomerPhone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			svc := NewOrderService(mockRepo, logger)

			req := validOrderRequest()
			tt.mutate(req)

			_, err := svc.Create(ctx, req)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
			mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestOrderService_Create_RollbackOnItemFailure(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockRepo.On("CreateOrder", ctx, mockTx, mock.Anything).Return(nil)
	mockRepo.On("CreateOrderItems", ctx, mockTx, mock.Anything).Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := svc.Create(ctx, validOrderRequest())

	require.Error(t, err)
	assert.Equal(t, model.ErrStorageUnavailable, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
}

func TestOrderService_UpdateStatus_Permissive(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	stored := &model.Order{
		ID:           orderID,
		CustomerName: "Ramesh Patel",
		Total:        250,
		Status:       model.StatusCompleted,
		CreatedAt:    time.Now(),
	}

	// COMPLETED -> PENDING is allowed: no transition is terminal.
	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("UpdateStatus", ctx, orderID, model.StatusPending).Return(true, nil)
	mockRepo.On("GetByID", ctx, orderID).Return(stored, []model.OrderItem{}, nil)

	order, err := svc.UpdateStatus(ctx, orderID, "PENDING")

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 250.0, order.Total)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, logger)

	order, err := svc.UpdateStatus(ctx, uuid.New(), "SHIPPED")

	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidStatus, err)
	assert.Nil(t, order)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("UpdateStatus", ctx, orderID, model.StatusProcessing).Return(false, nil)

	order, err := svc.UpdateStatus(ctx, orderID, "PROCESSING")

	require.Error(t, err)
	assert.Equal(t, model.ErrOrderNotFound, err)
	assert.Nil(t, order)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, logger)

	mockRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

	order, err := svc.Get(ctx, orderID)

	require.Error(t, err)
	assert.Equal(t, model.ErrOrderNotFound, err)
	assert.Nil(t, order)
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		stored := []model.Order{{ID: uuid.New(), Status: model.StatusPending}}
		mockRepo.On("GetAll", ctx).Return(stored, nil)

		orders, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, orders)
	})

	t.Run("Empty result is an empty slice", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("GetAll", ctx).Return([]model.Order(nil), nil)

		orders, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("Repository error surfaces as storage unavailable", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("GetAll", ctx).Return(nil, errors.New("connection refused"))

		orders, err := svc.List(ctx)
		require.Error(t, err)
		assert.Equal(t, model.ErrStorageUnavailable, err)
		assert.Nil(t, orders)
	})
}

func TestOrderService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderID := uuid.New()
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Delete", ctx, orderID).Return(true, nil)

		require.NoError(t, svc.Delete(ctx, orderID))
	})

	t.Run("Not found", func(t *testing.T) {
		orderID := uuid.New()
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Delete", ctx, orderID).Return(false, nil)

		err := svc.Delete(ctx, orderID)
		require.Error(t, err)
		assert.Equal(t, model.ErrOrderNotFound, err)
	})
}
