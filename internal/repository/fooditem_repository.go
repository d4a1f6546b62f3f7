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

// foodItemRepository implements the FoodItemRepository interface using PostgreSQL.
type foodItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodItemRepository creates a new PostgreSQL-backed food item repository.
func NewFoodItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodItemRepository {
	return &foodItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "fooditem").Logger(),
	}
}

// GetAll retrieves all food items with their image galleries, in insertion order.
func (r *foodItemRepository) GetAll(ctx context.Context) ([]model.FoodItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at
		FROM food_items
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query food items")
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	var items []model.FoodItem
	for rows.Next() {
		var item model.FoodItem
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food item row")
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		item.Images = []model.Image{}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food item rows")
		return nil, fmt.Errorf("error iterating food items: %w", err)
	}

	if err := r.attachGalleries(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// attachGalleries loads all gallery images and groups them onto their items.
func (r *foodItemRepository) attachGalleries(ctx context.Context, items []model.FoodItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		SELECT id, food_item_id, url
		FROM images
		ORDER BY food_item_id, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query images")
		return fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	byItem := make(map[uuid.UUID][]model.Image)
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.FoodItemID, &img.URL); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan image row")
			return fmt.Errorf("failed to scan image: %w", err)
		}
		byItem[img.FoodItemID] = append(byItem[img.FoodItemID], img)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating image rows")
		return fmt.Errorf("error iterating images: %w", err)
	}

	for i := range items {
		if images, ok := byItem[items[i].ID]; ok {
			items[i].Images = images
		}
	}

	return nil
}

// GetByID retrieves a single food item with its gallery.
func (r *foodItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at
		FROM food_items
		WHERE id = $1
	`

	var item model.FoodItem
	err := r.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description,
		&item.Price, &item.Category, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("food_item_id", id.String()).Msg("food item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to query food item")
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}

	imagesQuery := `
		SELECT id, food_item_id, url
		FROM images
		WHERE food_item_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, imagesQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to query images")
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	item.Images = []model.Image{}
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.FoodItemID, &img.URL); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan image row")
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		item.Images = append(item.Images, img)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating image rows")
		return nil, fmt.Errorf("error iterating images: %w", err)
	}

	return &item, nil
}

// ExistsByName reports whether a food item with the given name exists.
func (r *foodItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM food_items WHERE name = $1)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to check food item existence")
		return false, fmt.Errorf("failed to check food item existence: %w", err)
	}

	return exists, nil
}

// BeginTx starts a new database transaction.
func (r *foodItemRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateFoodItem inserts a new food item within the provided transaction.
func (r *foodItemRepository) CreateFoodItem(ctx context.Context, tx pgx.Tx, item *model.FoodItem) error {
	query := `
		INSERT INTO food_items (id, name, description, price, category, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price,
		item.Category, item.ImageURL, item.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("food_item_id", item.ID.String()).
			Msg("failed to create food item")
		return fmt.Errorf("failed to create food item: %w", err)
	}

	r.logger.Debug().
		Str("food_item_id", item.ID.String()).
		Str("name", item.Name).
		Msg("food item created successfully")

	return nil
}

// CreateImages inserts gallery images within the provided transaction.
func (r *foodItemRepository) CreateImages(ctx context.Context, tx pgx.Tx, images []model.Image) error {
	if len(images) == 0 {
		return nil
	}

	query := `
		INSERT INTO images (id, food_item_id, url)
		VALUES ($1, $2, $3)
	`

	batch := &pgx.Batch{}
	for _, img := range images {
		batch.Queue(query, img.ID, img.FoodItemID, img.URL)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(images); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("food_item_id", images[i].FoodItemID.String()).
				Str("url", images[i].URL).
				Msg("failed to create image")
			return fmt.Errorf("failed to create image: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(images)).
		Msg("gallery images created successfully")

	return nil
}

// Update writes the mutable fields of a food item. The gallery relation
// is never touched here.
func (r *foodItemRepository) Update(ctx context.Context, item *model.FoodItem) (bool, error) {
	query := `
		UPDATE food_items
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, item.ID, item.Name, item.Description,
		item.Price, item.Category, item.ImageURL)
	if err != nil {
		r.logger.Error().Err(err).Str("food_item_id", item.ID.String()).Msg("failed to update food item")
		return false, fmt.Errorf("failed to update food item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a food item; the images cascade constraint removes the
// gallery atomically with the parent row.
func (r *foodItemRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		DELETE FROM food_items
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to delete food item")
		return false, fmt.Errorf("failed to delete food item: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	if deleted {
		r.logger.Debug().Str("food_item_id", id.String()).Msg("food item deleted")
	}

	return deleted, nil
}
