package scatter

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Selection is the sorted set of indices of selected records.
type Selection []int

// Contains reports whether record i is selected.
func (s Selection) Contains(i int) bool {
	j := sort.SearchInts(s, i)
	return j < len(s) && s[j] == i
}

// SelectRegion returns the indices of all points (xs[i], ys[i]) inside r.
// Points on the border of r are selected.
func SelectRegion(xs, ys []float64, r DataRect) Selection {
	sel := Selection{}
	for i := range xs {
		if r.Contains(xs[i], ys[i]) {
			sel = append(sel, i)
		}
	}
	return sel
}

// Brush implements rectangular selection of markers. Regions are given in
// user units and are inverse mapped through the x and y scales of the
// plot to select records in data space.
//
// Brush events are handled one at a time; it is safe to deliver them
// from several goroutines.
type Brush struct {
	// Extent is the area the brush may cover.
	Extent Rect

	x, y   *Scale
	xs, ys []float64
	log    zerolog.Logger

	mu        sync.Mutex
	region    Rect
	active    bool
	selection Selection
}

func newBrush(extent Rect, x, y *Scale, xs, ys []float64, log zerolog.Logger) *Brush {
	return &Brush{
		Extent:    extent.Canonic(),
		x:         x,
		y:         y,
		xs:        xs,
		ys:        ys,
		log:       log,
		selection: Selection{},
	}
}

// Start begins a new gesture and clears the selection.
func (b *Brush) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection = Selection{}
	b.region = Rect{}
	b.active = false
}

// Move updates the selection to the records inside r. An empty region
// leaves the selection untouched. Move reports whether r was used.
func (b *Brush) Move(r Rect) bool { return b.brushed(r) }

// End finishes a gesture with the final region r, like Move.
func (b *Brush) End(r Rect) bool { return b.brushed(r) }

func (b *Brush) brushed(r Rect) bool {
	clamped, ok := b.clamp(r)
	if !ok {
		return false
	}
	dr := b.dataRegion(clamped)
	sel := b.selectRegion(clamped, dr)

	b.mu.Lock()
	b.region = clamped
	b.active = true
	b.selection = sel
	b.mu.Unlock()

	b.log.Debug().
		Stringer("region", clamped).
		Float64("xmin", dr.X.Min).Float64("xmax", dr.X.Max).
		Float64("ymin", dr.Y.Min).Float64("ymax", dr.Y.Max).
		Int("selected", len(sel)).
		Msg("brush")
	return true
}

// Select returns the records of the plot inside the data space
// rectangle r. It does not change the selection of b.
func (b *Brush) Select(r DataRect) Selection {
	return SelectRegion(b.xs, b.ys, r)
}

// selectRegion selects the records inside the user unit region r and its
// inverse image dr. A record is inside on an axis if its data value lies
// in dr or its marker center lies in r: the pixel test keeps markers
// exactly on an edge of r selected despite rounding in the inverse
// mapping, the data test covers degenerate scales which map every value
// to the middle of the axis.
func (b *Brush) selectRegion(r Rect, dr DataRect) Selection {
	sel := Selection{}
	for i := range b.xs {
		cx, cy := b.x.Map(b.xs[i]), b.y.Map(b.ys[i])
		inX := dr.X.Contains(b.xs[i]) || (cx >= r.Min.X && cx <= r.Max.X)
		inY := dr.Y.Contains(b.ys[i]) || (cy >= r.Min.Y && cy <= r.Max.Y)
		if inX && inY {
			sel = append(sel, i)
		}
	}
	return sel
}

// DataRegion inverse maps the user unit region r, clamped to the brush
// extent, into data space. It reports false for an empty region.
func (b *Brush) DataRegion(r Rect) (DataRect, bool) {
	clamped, ok := b.clamp(r)
	if !ok {
		return DataRect{}, false
	}
	return b.dataRegion(clamped), true
}

func (b *Brush) dataRegion(r Rect) DataRect {
	// y is inverted: the bottom edge Max.Y holds the smaller data value.
	return DataRect{
		X: Interval{b.x.Invert(r.Min.X), b.x.Invert(r.Max.X)}.Canonic(),
		Y: Interval{b.y.Invert(r.Max.Y), b.y.Invert(r.Min.Y)}.Canonic(),
	}
}

func (b *Brush) clamp(r Rect) (Rect, bool) {
	r = r.Canonic().Intersect(b.Extent)
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

// Selected returns a copy of the current selection.
func (b *Brush) Selected() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(Selection{}, b.selection...)
}

// IsSelected reports whether record i is selected.
func (b *Brush) IsSelected(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection.Contains(i)
}

// Region returns the current brush region in user units. It reports false
// if no region has been brushed since the last Start.
func (b *Brush) Region() (Rect, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.region, b.active
}
