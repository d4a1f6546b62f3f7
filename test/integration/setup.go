package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"snack-depot/internal/auth"
	"snack-depot/internal/database"
	"snack-depot/internal/handler"
	"snack-depot/internal/repository"
	"snack-depot/internal/router"
	"snack-depot/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// AdminSecret is the shared secret the test stack is wired with.
const AdminSecret = "0089"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and
// the application schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// NewTestRouter wires the full application stack against the given pool.
func NewTestRouter(pool *pgxpool.Pool) http.Handler {
	logger := zerolog.Nop()

	foodItemRepo := repository.NewFoodItemRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	gate := auth.NewGate(AdminSecret, logger)

	catalogService := service.NewCatalogService(foodItemRepo, gate, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	return router.New(catalogHandler, orderHandler, logger)
}

// CleanupDB removes all data from the application tables between tests.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "images", "food_items"}
	for _, table := range tables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
