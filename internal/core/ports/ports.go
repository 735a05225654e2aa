package ports

import (
	"context"
	"image"
)

// IconStore defines the port for icon image persistence
type IconStore interface {
	// Load reads and decodes the image file at path
	Load(ctx context.Context, path string) (image.Image, error)

	// Save encodes img and writes it to path
	// The encoding format is inferred from the file extension
	Save(ctx context.Context, path string, img image.Image) error

	// Exists checks if a file exists at path
	Exists(path string) bool
}

// BadgeRenderer defines the port for compositing the dev badge onto an icon
type BadgeRenderer interface {
	// Render returns a badged copy of src, never modifying src itself
	// fallback reports whether the embedded fallback font was used for the label
	Render(src image.Image) (img image.Image, fallback bool, err error)
}
