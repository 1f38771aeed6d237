package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Geom is anything which can be drawn onto a Frame.
type Geom interface {
	Draw(f Frame)
}

// BoxStyle combines a line style for the border with a fill color for
// the interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// WithAlpha scales the alpha channel of col by alpha. It reports false if
// there is nothing to draw: col is nil or alpha is outside (0,1].
func WithAlpha(col color.Color, alpha float64) (color.Color, bool) {
	if col == nil {
		return col, false
	}
	if alpha <= 0 || alpha > 1 || math.IsNaN(alpha) {
		return col, false
	}
	if alpha == 1 {
		return col, true
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		uint16(float64(r) * alpha),
		uint16(float64(g) * alpha),
		uint16(float64(b) * alpha),
		uint16(float64(a) * alpha),
	}, true
}
