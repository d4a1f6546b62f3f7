package model

import (
	"time"

	"github.com/google/uuid"
)

// Known catalog categories. The set is open: any non-empty category is
// accepted, these are the values the storefront knows how to render.
const (
	CategoryNamkeen   = "Namkeen"
	CategoryWafers    = "Wafers"
	CategorySweet     = "Sweet"
	CategorySpecialty = "Specialty"
)

// FoodItem represents a sellable catalog entry with its image gallery.
type FoodItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Images      []Image   `json:"images"`
}

// Image is a gallery entry owned exclusively by one FoodItem. Deleting
// the item deletes its images.
type Image struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FoodItemID uuid.UUID `json:"-" db:"food_item_id"`
	URL        string    `json:"url" db:"url"`
}

// CreateFoodItemRequest is the payload for creating a catalog entry.
// AdminSecret arrives as "password" to match the admin client.
type CreateFoodItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	AdminSecret string   `json:"password"`
}

// FoodItemPatch enumerates the mutable fields of a FoodItem. Nil fields
// are left untouched. The gallery is deliberately not reachable here.
type FoodItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
}
