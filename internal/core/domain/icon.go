package domain

import "image/color"

// IconStatus represents the outcome of processing a single icon
type IconStatus string

const (
	// StatusGenerated means the badged icon was written successfully
	StatusGenerated IconStatus = "generated"
	// StatusSkipped means the source icon file was missing
	StatusSkipped IconStatus = "skipped"
	// StatusFailed means decoding, rendering, or saving failed
	StatusFailed IconStatus = "failed"
)

// IconResult represents the outcome of one icon in a batch run
type IconResult struct {
	Name         string
	Status       IconStatus
	OutputPath   string
	FontFallback bool // true when the embedded fallback font was used
	Err          error
}

// GenerateSummary aggregates the results of a batch run
type GenerateSummary struct {
	Total     int
	Succeeded int
	Results   []IconResult
}

// Failed returns the number of icons that were skipped or failed
func (s *GenerateSummary) Failed() int {
	return s.Total - s.Succeeded
}

// DefaultIconSet returns the extension's production icon filenames in
// processing order. "icon.png" is the manifest default icon and is
// processed like any other size variant.
func DefaultIconSet() []string {
	return []string{
		"icon-16.png",
		"icon.png",
		"icon-48.png",
		"icon-128.png",
	}
}

// BadgeStyle describes the dev badge composited onto an icon:
// a translucent triangle anchored at the bottom-right corner with a
// short label drawn over it.
type BadgeStyle struct {
	Label         string
	Fill          color.NRGBA
	LabelColor    color.NRGBA
	TriangleRatio float64 // triangle leg length as a fraction of icon width
	FontRatio     float64 // label size as a fraction of icon width
	MinFontSize   int
	LabelInset    int // pixels between the label and the icon edges
	FontPaths     []string
}

// DefaultBadgeStyle returns the standard dev badge: a crimson triangle
// covering 60% of the width with a white "DEV" label
func DefaultBadgeStyle() BadgeStyle {
	return BadgeStyle{
		Label:         "DEV",
		Fill:          color.NRGBA{R: 220, G: 20, B: 60, A: 200},
		LabelColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		TriangleRatio: 0.6,
		FontRatio:     0.25,
		MinFontSize:   6,
		LabelInset:    2,
		FontPaths:     DefaultFontPaths(),
	}
}

// DefaultFontPaths returns the bold system fonts tried in order before
// falling back to the embedded font
func DefaultFontPaths() []string {
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"C:/Windows/Fonts/arialbd.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
	}
}

// TriangleLeg returns the triangle leg length in pixels for an icon of
// the given width
func (s BadgeStyle) TriangleLeg(width int) int {
	return int(float64(width) * s.TriangleRatio)
}

// FontSize returns the label size in pixels for an icon of the given width
func (s BadgeStyle) FontSize(width int) int {
	size := int(float64(width) * s.FontRatio)
	if size < s.MinFontSize {
		size = s.MinFontSize
	}
	return size
}
