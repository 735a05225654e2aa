// Package fontutil resolves a bold font face for badge labels.
//
// It walks a chain of well-known system font paths and falls back to the
// Go bold font embedded in the binary when none of them resolve, so label
// rendering never depends on the host having fonts installed.
package fontutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// LoadFace returns a font face at the given pixel size, trying each path
// in order. fallback reports whether the embedded Go Bold font was used
// because no path resolved.
func LoadFace(paths []string, size int) (face font.Face, fallback bool, err error) {
	for _, path := range paths {
		face, err := faceFromFile(path, size)
		if err == nil {
			return face, false, nil
		}
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	face, err = newFace(f, size)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create embedded font face: %w", err)
	}
	return face, true, nil
}

// faceFromFile reads a .ttf or .ttc file and builds a face at the given size
func faceFromFile(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		// Font collection: take the first font in the file
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font collection %s: %w", path, err)
		}
		f, err = coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("failed to extract font from collection %s: %w", path, err)
		}
	} else {
		f, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
	}

	return newFace(f, size)
}

func newFace(f *opentype.Font, size int) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
