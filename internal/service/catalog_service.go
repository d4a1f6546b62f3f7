package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"snack-depot/internal/auth"
	"snack-depot/internal/model"
	"snack-depot/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.FoodItemRepository
	gate   *auth.Gate
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.FoodItemRepository, gate *auth.Gate, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		gate:   gate,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves all food items with their galleries.
func (s *catalogService) List(ctx context.Context) ([]model.FoodItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list food items")
		return nil, model.ErrStorageUnavailable
	}

	if items == nil {
		items = []model.FoodItem{}
	}

	return items, nil
}

// Get retrieves a single food item by ID with its gallery.
func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to get food item")
		return nil, model.ErrStorageUnavailable
	}

	if item == nil {
		return nil, model.ErrItemNotFound
	}

	return item, nil
}

// Create persists a new food item and its gallery images in one
// transaction. The admin secret is checked before anything else.
func (s *catalogService) Create(ctx context.Context, req *model.CreateFoodItemRequest) (*model.FoodItem, error) {
	if !s.gate.Verify(req.AdminSecret) {
		return nil, model.ErrUnauthorised
	}

	if err := validateFoodItemFields(req.Name, req.Price, req.ImageURL, req.Images); err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("food item validation failed")
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.CategoryNamkeen
	}

	item := &model.FoodItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
		Images:      []model.Image{},
	}

	for _, url := range req.Images {
		item.Images = append(item.Images, model.Image{
			ID:         uuid.New(),
			FoodItemID: item.ID,
			URL:        url,
		})
	}

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

	if err = s.repo.CreateFoodItem(ctx, tx, item); err != nil {
		s.logger.Error().Err(err).Str("food_item_id", item.ID.String()).Msg("failed to create food item")
		return nil, model.ErrStorageUnavailable
	}

	if err = s.repo.CreateImages(ctx, tx, item.Images); err != nil {
		s.logger.Error().
			Err(err).
			Str("food_item_id", item.ID.String()).
			Int("image_count", len(item.Images)).
			Msg("failed to create gallery images")
		return nil, model.ErrStorageUnavailable
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("food_item_id", item.ID.String()).Msg("failed to commit transaction")
		return nil, model.ErrStorageUnavailable
	}

	s.logger.Info().
		Str("food_item_id", item.ID.String()).
		Str("name", item.Name).
		Str("category", item.Category).
		Int("image_count", len(item.Images)).
		Msg("food item created")

	return item, nil
}

// Update applies a typed patch to the mutable fields of a food item.
func (s *catalogService) Update(ctx context.Context, id uuid.UUID, patch *model.FoodItemPatch, secret string) (*model.FoodItem, error) {
	if !s.gate.Verify(secret) {
		return nil, model.ErrUnauthorised
	}

	if patch == nil {
		return nil, model.NewValidationError("Update payload is required")
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to load food item for update")
		return nil, model.ErrStorageUnavailable
	}

	if item == nil {
		return nil, model.ErrItemNotFound
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}

	if err := validateFoodItemFields(item.Name, item.Price, item.ImageURL, nil); err != nil {
		s.logger.Warn().Err(err).Str("food_item_id", id.String()).Msg("food item patch validation failed")
		return nil, err
	}
	if item.Category == "" {
		return nil, model.NewValidationError("Category must not be empty")
	}

	found, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to update food item")
		return nil, model.ErrStorageUnavailable
	}

	// The record can vanish between the read and the write; last write
	// wins everywhere else, so treat that as not found too.
	if !found {
		return nil, model.ErrItemNotFound
	}

	s.logger.Info().Str("food_item_id", id.String()).Msg("food item updated")

	return item, nil
}

// Delete removes a food item and its gallery. Deleting an absent or
// already-deleted id reports not found.
func (s *catalogService) Delete(ctx context.Context, id uuid.UUID, secret string) error {
	if !s.gate.Verify(secret) {
		return model.ErrUnauthorised
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", id.String()).Msg("failed to delete food item")
		return model.ErrStorageUnavailable
	}

	if !deleted {
		return model.ErrItemNotFound
	}

	s.logger.Info().Str("food_item_id", id.String()).Msg("food item deleted")

	return nil
}

// validateFoodItemFields checks the shared field rules for create and
// update. Gallery URLs are only supplied on create.
func validateFoodItemFields(name string, price float64, imageURL string, galleryURLs []string) error {
	if strings.TrimSpace(name) == "" {
		return model.NewValidationError("Name must not be empty")
	}

	if price < 0 {
		return model.ErrNegativePrice
	}

	if strings.TrimSpace(imageURL) == "" {
		return model.NewValidationError("Primary image URL must not be empty")
	}

	for i, url := range galleryURLs {
		if strings.TrimSpace(url) == "" {
			return model.NewValidationError(fmt.Sprintf("Gallery image %d: URL must not be empty", i))
		}
	}

	return nil
}
