// Package seed loads an initial catalog from a JSON file on local disk
// or S3 and inserts any entries not already present. Seeding is
// optional and idempotent by item name.
package seed

import (
	"context"
)

// Item is one catalog entry in a seed file.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
}

// Loader defines the interface for loading seed catalog files.
type Loader interface {
	// Load reads a JSON seed file and returns its catalog entries.
	Load(ctx context.Context, path string) ([]Item, error)
}
