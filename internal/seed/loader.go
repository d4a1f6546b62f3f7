package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading seed files from local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed file and returns its catalog entries. The file
// is expected to contain a JSON array of items.
func (l *fileLoader) Load(ctx context.Context, path string) ([]Item, error) {
	l.logger.Info().Str("file", path).Msg("loading seed catalog file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	var items []Item
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("items_loaded", len(items)).
		Msg("seed catalog file loaded successfully")

	return items, nil
}
