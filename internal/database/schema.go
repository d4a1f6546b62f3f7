package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaDDL string

// EnsureSchema applies the embedded DDL. Every statement is IF NOT
// EXISTS, so running it on every startup is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		logger.Error().Err(err).Msg("failed to apply schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema ensured")
	return nil
}
