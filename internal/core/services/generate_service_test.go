package services

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"devicon/internal/core/domain"
	"devicon/internal/core/ports/mocks"
)

func testImage(size int) image.Image {
	return imaging.New(size, size, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
}

// seedIcons registers the named icons as existing under srcDir
func seedIcons(store *mocks.MockIconStore, srcDir string, names ...string) {
	for _, name := range names {
		store.AddImage(filepath.Join(srcDir, name), testImage(16))
	}
}

func TestGenerateService_Execute_AllSucceed(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "dev")
	seedIcons(store, srcDir, "icon-16.png", "icon.png", "icon-48.png", "icon-128.png")

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   destDir,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total != 4 {
		t.Errorf("expected Total=4, got %d", summary.Total)
	}
	if summary.Succeeded != 4 {
		t.Errorf("expected Succeeded=4, got %d", summary.Succeeded)
	}
	if summary.Failed() != 0 {
		t.Errorf("expected Failed()=0, got %d", summary.Failed())
	}

	if renderer.GetCalls() != 4 {
		t.Errorf("expected 4 render calls, got %d", renderer.GetCalls())
	}

	// Outputs land in the destination directory under the source name
	if _, ok := store.GetSaved(filepath.Join(destDir, "icon-16.png")); !ok {
		t.Error("expected icon-16.png to be saved to the destination directory")
	}
}

func TestGenerateService_Execute_MissingIconSkipped(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	destDir := filepath.Join(srcDir, "dev")

	// icon-48.png is absent
	seedIcons(store, srcDir, "icon-16.png", "icon.png", "icon-128.png")

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   destDir,
	})

	if err != nil {
		t.Fatalf("expected the run to complete, got error: %v", err)
	}

	if summary.Succeeded != 3 {
		t.Errorf("expected Succeeded=3, got %d", summary.Succeeded)
	}

	var skipped *domain.IconResult
	for i := range summary.Results {
		if summary.Results[i].Name == "icon-48.png" {
			skipped = &summary.Results[i]
		}
	}
	if skipped == nil {
		t.Fatal("expected a result for icon-48.png")
	}
	if skipped.Status != domain.StatusSkipped {
		t.Errorf("expected StatusSkipped, got %s", skipped.Status)
	}

	// The missing icon is never loaded or rendered
	for _, path := range store.GetLoadCalls() {
		if filepath.Base(path) == "icon-48.png" {
			t.Error("missing icon should not be loaded")
		}
	}
	if renderer.GetCalls() != 3 {
		t.Errorf("expected 3 render calls, got %d", renderer.GetCalls())
	}
}

func TestGenerateService_Execute_MissingSourceDir(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: filepath.Join(t.TempDir(), "does-not-exist"),
		DestDir:   filepath.Join(t.TempDir(), "dev"),
	})

	if err == nil {
		t.Fatal("expected error for missing source directory")
	}
	if summary != nil {
		t.Error("expected nil summary on fatal error")
	}

	// Nothing is processed or written
	if renderer.GetCalls() != 0 {
		t.Errorf("expected 0 render calls, got %d", renderer.GetCalls())
	}
	if len(store.GetSaveCalls()) != 0 {
		t.Errorf("expected 0 save calls, got %d", len(store.GetSaveCalls()))
	}
}

func TestGenerateService_Execute_RenderFailureContinues(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	seedIcons(store, srcDir, "icon-16.png", "icon.png")
	renderer.SetShouldFail(true, fmt.Errorf("bad glyph"))

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   filepath.Join(srcDir, "dev"),
		Icons:     []string{"icon-16.png", "icon.png"},
	})

	if err != nil {
		t.Fatalf("expected the run to complete, got error: %v", err)
	}

	if summary.Succeeded != 0 {
		t.Errorf("expected Succeeded=0, got %d", summary.Succeeded)
	}

	// All icons were still attempted
	if renderer.GetCalls() != 2 {
		t.Errorf("expected 2 render calls, got %d", renderer.GetCalls())
	}

	for _, result := range summary.Results {
		if result.Status != domain.StatusFailed {
			t.Errorf("expected StatusFailed for %s, got %s", result.Name, result.Status)
		}
		if result.Err == nil {
			t.Errorf("expected error attached to failed result for %s", result.Name)
		}
	}
}

func TestGenerateService_Execute_SaveFailureContinues(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	seedIcons(store, srcDir, "icon-16.png")
	store.SetSaveError(fmt.Errorf("disk full"))

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   filepath.Join(srcDir, "dev"),
		Icons:     []string{"icon-16.png"},
	})

	if err != nil {
		t.Fatalf("expected the run to complete, got error: %v", err)
	}

	if summary.Succeeded != 0 {
		t.Errorf("expected Succeeded=0, got %d", summary.Succeeded)
	}
	if summary.Results[0].Status != domain.StatusFailed {
		t.Errorf("expected StatusFailed, got %s", summary.Results[0].Status)
	}
}

func TestGenerateService_Execute_ProgressCallback(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	seedIcons(store, srcDir, "icon-16.png", "icon.png")

	var seen []string
	_, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   filepath.Join(srcDir, "dev"),
		Icons:     []string{"icon-16.png", "icon-48.png", "icon.png"},
		Progress: func(r domain.IconResult) {
			seen = append(seen, r.Name)
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Callbacks arrive in icon-list order
	want := []string{"icon-16.png", "icon-48.png", "icon.png"}
	if len(seen) != len(want) {
		t.Fatalf("expected %d progress calls, got %d", len(want), len(seen))
	}
	for i, name := range want {
		if seen[i] != name {
			t.Errorf("expected progress[%d]=%s, got %s", i, name, seen[i])
		}
	}
}

func TestGenerateService_Execute_FontFallbackFlagPropagated(t *testing.T) {
	store := mocks.NewMockIconStore()
	renderer := mocks.NewMockBadgeRenderer()
	renderer.SetFallback(true)
	svc := NewGenerateService(store, renderer)

	srcDir := t.TempDir()
	seedIcons(store, srcDir, "icon-16.png")

	summary, err := svc.Execute(context.Background(), GenerateRequest{
		SourceDir: srcDir,
		DestDir:   filepath.Join(srcDir, "dev"),
		Icons:     []string{"icon-16.png"},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Results[0].FontFallback {
		t.Error("expected FontFallback=true on the result")
	}
}
