// Package badge composites a development badge onto extension icons:
// a translucent triangle anchored at the bottom-right corner with a
// short label drawn over it in a bold face.
package badge

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"devicon/internal/core/domain"
	"devicon/pkg/fontutil"
)

// Renderer draws a dev badge according to a BadgeStyle
type Renderer struct {
	style domain.BadgeStyle
}

// NewRenderer creates a renderer for the given badge style
func NewRenderer(style domain.BadgeStyle) *Renderer {
	return &Renderer{style: style}
}

// Render returns a badged copy of src. The source image is never
// modified. fallback reports whether the embedded font was used for
// the label because no configured font path resolved.
func (r *Renderer) Render(src image.Image) (image.Image, bool, error) {
	// Work on a zero-origin NRGBA copy of the source
	base := imaging.Clone(src)
	bounds := base.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Composite the triangle through a transparent same-size overlay so
	// the fill alpha blends with the icon instead of replacing it
	overlay := r.triangleOverlay(width, height)
	badged := imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0)

	fallback, err := r.drawLabel(badged, width, height)
	if err != nil {
		return nil, false, err
	}
	return badged, fallback, nil
}

// triangleOverlay returns a transparent image with the badge triangle
// filled in. Vertices: (w,h), (w-leg,h), (w,h-leg).
func (r *Renderer) triangleOverlay(width, height int) *image.NRGBA {
	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))
	leg := r.style.TriangleLeg(width)

	// A pixel is inside the right triangle iff it lies on or below the
	// hypotenuse x+y = w+h-leg
	for y := height - leg; y < height; y++ {
		if y < 0 {
			continue
		}
		for x := width - leg; x < width; x++ {
			if x < 0 {
				continue
			}
			if x+y >= width+height-leg {
				overlay.SetNRGBA(x, y, r.style.Fill)
			}
		}
	}
	return overlay
}

// drawLabel draws the badge label with its bottom-right corner inset
// from the icon's bottom-right corner. It reports whether the embedded
// fallback font was used.
func (r *Renderer) drawLabel(dst *image.NRGBA, width, height int) (bool, error) {
	size := r.style.FontSize(width)

	face, fallback, err := fontutil.LoadFace(r.style.FontPaths, size)
	if err != nil {
		return false, fmt.Errorf("failed to load badge font: %w", err)
	}
	defer face.Close()

	// Bounds are relative to the drawing dot, so placing the glyph box's
	// bottom-right corner at (w-inset, h-inset) fixes the dot directly
	textBounds, _ := font.BoundString(face, r.style.Label)
	dotX := width - r.style.LabelInset - textBounds.Max.X.Ceil()
	dotY := height - r.style.LabelInset - textBounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.style.LabelColor),
		Face: face,
		Dot:  fixed.P(dotX, dotY),
	}
	d.DrawString(r.style.Label)
	return fallback, nil
}
