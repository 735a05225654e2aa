// Package imagestore provides filesystem-backed icon image IO.
package imagestore

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Store loads and saves icon images on the local filesystem
type Store struct{}

// New creates a new filesystem image store
func New() *Store {
	return &Store{}
}

// Load reads and decodes the image file at path
func (s *Store) Load(ctx context.Context, path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Save encodes img and writes it to path, creating parent directories as
// needed. The format is inferred from the file extension.
func (s *Store) Save(ctx context.Context, path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filepath.Base(path), err)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Exists checks if a file exists at path
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
