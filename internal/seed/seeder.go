package seed

import (
	"context"
	"strings"
	"time"

	"snack-depot/internal/model"
	"snack-depot/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder inserts seed catalog entries that are not already present.
type Seeder struct {
	repo   repository.FoodItemRepository
	logger zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(repo repository.FoodItemRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Seed inserts the given entries, skipping any whose name already
// exists and any that fail basic validation. Returns the number of
// items created.
func (s *Seeder) Seed(ctx context.Context, items []Item) (int, error) {
	created := 0

	for _, entry := range items {
		if strings.TrimSpace(entry.Name) == "" || strings.TrimSpace(entry.ImageURL) == "" || entry.Price < 0 {
			s.logger.Warn().
				Str("name", entry.Name).
				Float64("price", entry.Price).
				Msg("skipping invalid seed entry")
			continue
		}

		exists, err := s.repo.ExistsByName(ctx, entry.Name)
		if err != nil {
			return created, err
		}
		if exists {
			s.logger.Debug().Str("name", entry.Name).Msg("seed entry already present, skipping")
			continue
		}

		category := strings.TrimSpace(entry.Category)
		if category == "" {
			category = model.CategoryNamkeen
		}

		item := &model.FoodItem{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(entry.Name),
			Description: entry.Description,
			Price:       entry.Price,
			Category:    category,
			ImageURL:    entry.ImageURL,
			CreatedAt:   time.Now(),
		}

		for _, url := range entry.Images {
			if strings.TrimSpace(url) == "" {
				continue
			}
			item.Images = append(item.Images, model.Image{
				ID:         uuid.New(),
				FoodItemID: item.ID,
				URL:        url,
			})
		}

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return created, err
		}

		if err := s.repo.CreateFoodItem(ctx, tx, item); err != nil {
			_ = tx.Rollback(ctx)
			return created, err
		}

		if err := s.repo.CreateImages(ctx, tx, item.Images); err != nil {
			_ = tx.Rollback(ctx)
			return created, err
		}

		if err := tx.Commit(ctx); err != nil {
			return created, err
		}

		s.logger.Info().
			Str("food_item_id", item.ID.String()).
			Str("name", item.Name).
			Msg("seeded catalog entry")
		created++
	}

	return created, nil
}
