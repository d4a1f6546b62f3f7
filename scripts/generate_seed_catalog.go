package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSeedCatalog writes a sample catalog.json that the server can
// load at startup when SEED_ENABLED=true. Upload the same file to S3
// under the configured prefix to seed from there instead.
func main() {
	dataDir := "data/seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	type item struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Category    string   `json:"category"`
		ImageURL    string   `json:"imageUrl"`
		Images      []string `json:"images,omitempty"`
	}

	catalog := []item{
		{
			Name:        "Masala Gathiya",
			Description: "Crisp besan sticks seasoned with black pepper and ajwain",
			Price:       450,
			Category:    "Namkeen",
			ImageURL:    "/images/masala-gathiya.png",
			Images:      []string{"/images/masala-gathiya-2.png", "/images/masala-gathiya-3.png"},
		},
		{
			Name:        "Ratlami Sev",
			Description: "Spicy clove-scented sev in the Ratlam style",
			Price:       320,
			Category:    "Namkeen",
			ImageURL:    "/images/ratlami-sev.png",
		},
		{
			Name:        "Banana Wafers",
			Description: "Thin-cut raw banana chips fried in coconut oil",
			Price:       180,
			Category:    "Wafers",
			ImageURL:    "/images/banana-wafers.png",
		},
		{
			Name:        "Potato Wafers",
			Description: "Classic salted potato chips, kettle fried",
			Price:       160,
			Category:    "Wafers",
			ImageURL:    "/images/potato-wafers.png",
		},
		{
			Name:        "Sweet Boondi",
			Description: "Saffron-tinted boondi pearls in sugar syrup",
			Price:       260,
			Category:    "Sweet",
			ImageURL:    "/images/sweet-boondi.png",
		},
		{
			Name:        "Dry Fruit Chikki",
			Description: "Jaggery brittle loaded with cashews and almonds",
			Price:       520,
			Category:    "Specialty",
			ImageURL:    "/images/dry-fruit-chikki.png",
			Images:      []string{"/images/dry-fruit-chikki-2.png"},
		},
	}

	filePath := filepath.Join(dataDir, "catalog.json")

	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(catalog); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}

	fmt.Printf("Created %s with %d items\n", filePath, len(catalog))
	fmt.Println("\nTo seed on startup:")
	fmt.Println("  SEED_ENABLED=true SEED_FILE=data/seed/catalog.json ./api")
}
