package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"devicon/internal/core/domain"
	"devicon/internal/core/ports"
)

// GenerateService produces dev-badged variants of the extension icons
type GenerateService struct {
	store    ports.IconStore
	renderer ports.BadgeRenderer
}

// NewGenerateService creates a new generate service
func NewGenerateService(store ports.IconStore, renderer ports.BadgeRenderer) *GenerateService {
	return &GenerateService{
		store:    store,
		renderer: renderer,
	}
}

// GenerateRequest represents a request to badge a set of icons
type GenerateRequest struct {
	SourceDir string
	DestDir   string
	Icons     []string

	// Progress, when set, is called after each icon completes
	Progress func(domain.IconResult)
}

// Execute badges every requested icon independently. A missing source
// directory is the only fatal condition; individual icons that are
// missing or fail to process are recorded in the summary and the batch
// continues.
func (s *GenerateService) Execute(ctx context.Context, req GenerateRequest) (*domain.GenerateSummary, error) {
	info, err := os.Stat(req.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source directory does not exist: %s", req.SourceDir)
	}

	if err := os.MkdirAll(req.DestDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	icons := req.Icons
	if len(icons) == 0 {
		icons = domain.DefaultIconSet()
	}

	summary := &domain.GenerateSummary{
		Total:   len(icons),
		Results: make([]domain.IconResult, 0, len(icons)),
	}

	for _, name := range icons {
		result := s.processIcon(ctx, req, name)

		if result.Status == domain.StatusGenerated {
			summary.Succeeded++
		}
		summary.Results = append(summary.Results, result)

		if req.Progress != nil {
			req.Progress(result)
		}
	}

	return summary, nil
}

// processIcon badges a single icon: load, render, save. Every failure is
// captured in the result rather than propagated.
func (s *GenerateService) processIcon(ctx context.Context, req GenerateRequest, name string) domain.IconResult {
	srcPath := filepath.Join(req.SourceDir, name)
	destPath := filepath.Join(req.DestDir, name)

	if !s.store.Exists(srcPath) {
		return domain.IconResult{
			Name:   name,
			Status: domain.StatusSkipped,
		}
	}

	img, err := s.store.Load(ctx, srcPath)
	if err != nil {
		return domain.IconResult{
			Name:   name,
			Status: domain.StatusFailed,
			Err:    err,
		}
	}

	badged, fallback, err := s.renderer.Render(img)
	if err != nil {
		return domain.IconResult{
			Name:   name,
			Status: domain.StatusFailed,
			Err:    fmt.Errorf("failed to render badge: %w", err),
		}
	}

	if err := s.store.Save(ctx, destPath, badged); err != nil {
		return domain.IconResult{
			Name:   name,
			Status: domain.StatusFailed,
			Err:    err,
		}
	}

	return domain.IconResult{
		Name:         name,
		Status:       domain.StatusGenerated,
		OutputPath:   destPath,
		FontFallback: fallback,
	}
}
