package imagestore

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := New()
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "dev", "icon-16.png")

	src := imaging.New(16, 16, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	// Save should create the missing dev/ directory
	if err := store.Save(ctx, path, src); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	bounds := loaded.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Errorf("expected 16x16 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	got := imaging.Clone(loaded).NRGBAAt(8, 8)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("expected pixel %v, got %v", want, got)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New()

	_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error loading missing file")
	}
}

func TestStore_SaveUnknownFormat(t *testing.T) {
	store := New()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	err := store.Save(context.Background(), filepath.Join(t.TempDir(), "icon.xyz"), img)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestStore_Exists(t *testing.T) {
	store := New()
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")

	if store.Exists(path) {
		t.Error("expected Exists=false before save")
	}

	img := imaging.New(8, 8, color.NRGBA{A: 255})
	if err := store.Save(ctx, path, img); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	if !store.Exists(path) {
		t.Error("expected Exists=true after save")
	}

	if store.Exists(dir) {
		t.Error("expected Exists=false for a directory")
	}
}
