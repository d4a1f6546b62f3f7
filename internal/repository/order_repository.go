package repository

import (
	"context"
	"fmt"

	"snack-depot/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// GetAll retrieves all orders with their line items, newest first.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, customer_name, customer_address, customer_phone, total, status, created_at
		FROM orders
		ORDER BY created_at DESC, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		err := rows.Scan(&order.ID, &order.CustomerName, &order.CustomerAddress,
			&order.CustomerPhone, &order.Total, &order.Status, &order.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.Items = []model.OrderItem{}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads all line items and groups them onto their orders.
func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := `
		SELECT id, order_id, food_item_id, name, price, quantity
		FROM order_items
		ORDER BY order_id, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]model.OrderItem)
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID,
			&item.Name, &item.Price, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return fmt.Errorf("error iterating order items: %w", err)
	}

	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	orderQuery := `
		SELECT id, customer_name, customer_address, customer_phone, total, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerAddress,
		&order.CustomerPhone,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, food_item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID,
			&item.Name, &item.Price, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &order, items, nil
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_address, customer_phone, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query, order.ID, order.CustomerName, order.CustomerAddress,
		order.CustomerPhone, order.Total, order.Status, order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, food_item_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.FoodItemID, item.Name, item.Price, item.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("food_item_id", items[i].FoodItemID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// UpdateStatus writes the status field of an order. Nothing else on the
// row is touched.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes an order; the line items cascade constraint removes
// them atomically with the parent row.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		DELETE FROM orders
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	if deleted {
		r.logger.Debug().Str("order_id", id.String()).Msg("order deleted")
	}

	return deleted, nil
}
