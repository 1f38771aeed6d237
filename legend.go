package scatter

import (
	"image/color"
	"sync"

	"github.com/rs/zerolog"
)

// VisibleOpacity is the opacity of markers of a visible category.
const VisibleOpacity = 1.0

// DefaultDimOpacity is the opacity of markers of a hidden category.
const DefaultDimOpacity = 0.2

// LegendEntry is one row of the legend. All positions are in user units.
type LegendEntry struct {
	Category string
	Color    color.Color

	Swatch Rect  // the color block
	Label  Point // anchor of the category name
	Row    Rect  // the clickable area of the row
}

// Legend lists categories with their colors and tracks which categories
// are visible. Categories start out visible.
type Legend struct {
	Entries    []LegendEntry
	DimOpacity float64

	log zerolog.Logger

	mu      sync.Mutex
	visible map[string]bool
}

// legendLayout describes where the legend rows go.
type legendLayout struct {
	Origin  Point   // top left of the first row
	Right   float64 // right end of the clickable rows
	Swatch  float64
	Pitch   float64
	LabelDX float64
	LabelDY float64
}

func newLegend(categories []string, colors *Categorical, lay legendLayout, dim float64, log zerolog.Logger) *Legend {
	l := &Legend{
		Entries:    make([]LegendEntry, len(categories)),
		DimOpacity: dim,
		log:        log,
		visible:    make(map[string]bool, len(categories)),
	}
	for i, cat := range categories {
		top := lay.Origin.Y + float64(i)*lay.Pitch
		l.Entries[i] = LegendEntry{
			Category: cat,
			Color:    colors.Color(cat),
			Swatch:   R(lay.Origin.X, top, lay.Origin.X+lay.Swatch, top+lay.Swatch),
			Label:    Point{lay.Origin.X + lay.LabelDX, top + lay.LabelDY},
			Row:      R(lay.Origin.X, top, lay.Right, top+lay.Swatch),
		}
		l.visible[cat] = true
	}
	return l
}

// Categories returns the categories of the legend rows in order.
func (l *Legend) Categories() []string {
	cats := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		cats[i] = e.Category
	}
	return cats
}

// Toggle flips the visibility of category and returns the new state.
func (l *Legend) Toggle(category string) bool {
	l.mu.Lock()
	v, ok := l.visible[category]
	if !ok {
		v = true
	}
	v = !v
	l.visible[category] = v
	l.mu.Unlock()

	l.log.Debug().Str("category", category).Bool("visible", v).Msg("legend toggle")
	return v
}

// Visible reports whether markers of category are shown at full opacity.
func (l *Legend) Visible(category string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visible[category]
	return !ok || v
}

// Opacity returns the marker opacity of category.
func (l *Legend) Opacity(category string) float64 {
	if l.Visible(category) {
		return VisibleOpacity
	}
	return l.DimOpacity
}

// Hit returns the category of the row containing pt.
func (l *Legend) Hit(pt Point) (string, bool) {
	for _, e := range l.Entries {
		if e.Row.Contains(pt) {
			return e.Category, true
		}
	}
	return "", false
}
