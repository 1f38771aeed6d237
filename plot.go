package scatter

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vdobler/scatter/data"
	"github.com/vdobler/scatter/geom"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalidOptions is returned by New for unusable Options.
var ErrInvalidOptions = errors.New("invalid options")

// Channel maps records to one numeric visual channel.
type Channel struct {
	Name  string // used as axis label
	Value data.Accessor
}

// Column returns the Channel reading the named record field.
func Column(name string) Channel {
	return Channel{Name: name, Value: data.Field(name)}
}

// CategoryChannel maps records to the color channel.
type CategoryChannel struct {
	Name  string
	Value data.CategoryAccessor
}

// CategoryColumn returns the CategoryChannel reading the named field.
func CategoryColumn(name string) CategoryChannel {
	return CategoryChannel{Name: name, Value: data.CategoryField(name)}
}

// Options control how New builds a Plot. Start from DefaultOptions:
// Margin, Padding and DimOpacity are used as given, the other zero valued
// fields are replaced by their defaults.
type Options struct {
	Title string

	X, Y, Radius Channel
	Color        CategoryChannel

	// Legend lists the legend categories. If empty the categories
	// found in the data are used.
	Legend []string

	Margin        float64 // distance of the axes from the canvas edges
	Width, Height float64 // canvas extent in user units
	Ticks         int     // approximate number of ticks per axis
	Padding       float64 // relative expansion of the x and y data ranges
	RadiusRange   Interval
	Palette       palette.Palette
	DimOpacity    float64 // marker opacity of hidden categories, 0 hides them

	Style  *Style
	Logger *zerolog.Logger
}

// DefaultOptions returns the options of a 1000 x 1000 plot with a 50 unit
// margin, 6 ticks per axis, 5% padding, marker radii from 4 to 12 and the
// Tableau10 palette.
func DefaultOptions() Options {
	return Options{
		Margin:      50,
		Width:       1000,
		Height:      1000,
		Ticks:       DefaultTickCount,
		Padding:     0.05,
		RadiusRange: Interval{4, 12},
		Palette:     Tableau10,
		DimOpacity:  DefaultDimOpacity,
	}
}

func (o *Options) complete() error {
	def := DefaultOptions()
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.Ticks == 0 {
		o.Ticks = def.Ticks
	}
	if o.RadiusRange == (Interval{}) {
		o.RadiusRange = def.RadiusRange
	}
	if o.Palette == nil {
		o.Palette = def.Palette
	}

	switch {
	case o.X.Value == nil, o.Y.Value == nil, o.Radius.Value == nil:
		return fmt.Errorf("%w: x, y and radius channels are required", ErrInvalidOptions)
	case o.Color.Value == nil:
		return fmt.Errorf("%w: color channel is required", ErrInvalidOptions)
	case o.Width < 0 || o.Height < 0:
		return fmt.Errorf("%w: negative canvas %gx%g", ErrInvalidOptions, o.Width, o.Height)
	case o.Margin < 0 || 2*o.Margin >= o.Width || 2*o.Margin >= o.Height:
		return fmt.Errorf("%w: margin %g does not fit canvas %gx%g", ErrInvalidOptions, o.Margin, o.Width, o.Height)
	case o.Ticks < 0:
		return fmt.Errorf("%w: negative tick count %d", ErrInvalidOptions, o.Ticks)
	case o.Padding < 0:
		return fmt.Errorf("%w: negative padding %g", ErrInvalidOptions, o.Padding)
	case o.RadiusRange.Min < 0 || o.RadiusRange.Min > o.RadiusRange.Max:
		return fmt.Errorf("%w: radius range [%g,%g]", ErrInvalidOptions, o.RadiusRange.Min, o.RadiusRange.Max)
	case o.DimOpacity < 0 || o.DimOpacity > 1:
		return fmt.Errorf("%w: dim opacity %g outside [0,1]", ErrInvalidOptions, o.DimOpacity)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Plot

// Marker is the visual representation of one record.
type Marker struct {
	Index    int
	Category string
	X, Y, R  float64 // the data values

	Center Point   // in user units
	Radius float64 // in user units
	Fill   color.Color
}

// ID identifies the marker of record i.
func (m Marker) ID() string { return fmt.Sprintf("id_%d", m.Index) }

// Classes returns the per index class and the category class of m,
// see CategoryClass.
func (m Marker) Classes() []string {
	return []string{fmt.Sprintf("cls_%d", m.Index), CategoryClass(m.Category)}
}

// CategoryClass turns category into a single class token: runs of white
// space become one underscore. The empty category yields "_".
func CategoryClass(category string) string {
	if f := strings.Fields(category); len(f) > 0 {
		return strings.Join(f, "_")
	}
	return "_"
}

// A Plot is a scatter plot of records: one marker per record positioned
// by the x and y channel, sized by the radius channel and colored by the
// category channel, together with axes, a title, a brush and a legend.
//
// All scales and markers are computed once by New. Drawing a Plot never
// clears its target: drawing it twice onto the same canvas draws every
// element twice.
type Plot struct {
	Title         string
	Width, Height float64
	Margin        float64

	XScale, YScale, RScale *Scale

	// Categories are the distinct color values in order of first
	// appearance.
	Categories []string
	Colors     *Categorical
	Markers    []Marker

	Brush  *Brush
	Legend *Legend

	Style Style

	log zerolog.Logger
}

// New computes the scales, colors, markers, brush and legend of a scatter
// plot of records.
func New(records data.Records, opts Options) (*Plot, error) {
	if err := opts.complete(); err != nil {
		return nil, err
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	xs, err := data.Values(records, opts.X.Value)
	if err != nil {
		return nil, fmt.Errorf("x channel %q: %w", opts.X.Name, err)
	}
	ys, err := data.Values(records, opts.Y.Value)
	if err != nil {
		return nil, fmt.Errorf("y channel %q: %w", opts.Y.Name, err)
	}
	rs, err := data.Values(records, opts.Radius.Value)
	if err != nil {
		return nil, fmt.Errorf("radius channel %q: %w", opts.Radius.Name, err)
	}
	labels, err := data.Labels(records, opts.Color.Value)
	if err != nil {
		return nil, fmt.Errorf("color channel %q: %w", opts.Color.Name, err)
	}
	if len(records) == 0 {
		log.Warn().Msg("no data to plot")
	}

	p := &Plot{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Margin:     opts.Margin,
		Categories: data.Unique(labels),
		log:        log,
	}
	if opts.Style != nil {
		p.Style = *opts.Style
	} else {
		p.Style = DefaultStyle()
	}
	p.Colors = NewCategorical(p.Categories, opts.Palette)

	// We start by learning the sharp data ranges and expand them
	// into the scale domains afterwards.
	m := opts.Margin
	p.XScale = NewScale(Linear, Interval{m, opts.Width - m})
	p.YScale = NewScale(Linear, Interval{opts.Height - m, m})
	p.RScale = NewScale(Sqrt, opts.RadiusRange)
	p.XScale.Title, p.YScale.Title, p.RScale.Title = opts.X.Name, opts.Y.Name, opts.Radius.Name
	for _, s := range []*Scale{p.XScale, p.YScale} {
		s.Expand.Relative = opts.Padding
		s.Ticker = Ticks{N: opts.Ticks}
	}
	p.XScale.UpdateData(xs...)
	p.YScale.UpdateData(ys...)
	p.RScale.UpdateData(rs...)
	p.XScale.autoscale(Interval{-1, 1})
	p.YScale.autoscale(Interval{-1, 1})
	p.RScale.autoscale(Interval{0, 1})
	for _, s := range []*Scale{p.XScale, p.YScale, p.RScale} {
		if s.HasData() && s.Data.Degenerate() {
			log.Warn().Str("scale", s.Title).Float64("value", s.Data.Min).
				Msg("degenerate domain, all values map to the middle of the range")
		}
		log.Debug().Stringer("scale", s).Msg("autoscaled")
	}

	p.Markers = make([]Marker, len(records))
	for i := range records {
		p.Markers[i] = Marker{
			Index:    i,
			Category: labels[i],
			X:        xs[i],
			Y:        ys[i],
			R:        rs[i],
			Center:   Point{p.XScale.Map(xs[i]), p.YScale.Map(ys[i])},
			Radius:   p.RScale.Map(rs[i]),
			Fill:     p.Colors.Color(labels[i]),
		}
	}

	p.Brush = newBrush(R(m, m, opts.Width-m, opts.Height-m), p.XScale, p.YScale, xs, ys, log)

	legend := opts.Legend
	if len(legend) == 0 {
		legend = p.Categories
	} else {
		known := make(map[string]bool, len(p.Categories))
		for _, c := range p.Categories {
			known[c] = true
		}
		for _, c := range legend {
			if !known[c] {
				log.Warn().Str("category", c).Msg("legend entry without data")
			}
		}
	}
	ls := p.Style.Legend
	p.Legend = newLegend(legend, p.Colors, legendLayout{
		Origin:  Point{opts.Width - ls.OffsetX, m},
		Right:   opts.Width,
		Swatch:  ls.Swatch,
		Pitch:   ls.Pitch,
		LabelDX: ls.LabelDX,
		LabelDY: ls.LabelDY,
	}, opts.DimOpacity, log)

	return p, nil
}

// Render is New followed by Draw with the argument list of the classic
// scatter_plot function: title, the x, y and radius field names, an
// optional legend, the color field name and the margin.
func Render(c draw.Canvas, records data.Records, title, xCol, yCol, rCol string,
	legend []string, colorCol string, margin float64) (*Plot, error) {

	opts := DefaultOptions()
	opts.Title = title
	opts.X, opts.Y, opts.Radius = Column(xCol), Column(yCol), Column(rCol)
	opts.Color = CategoryColumn(colorCol)
	opts.Legend = legend
	opts.Margin = margin
	p, err := New(records, opts)
	if err != nil {
		return nil, err
	}
	p.Draw(c)
	return p, nil
}

// Click handles a click at pt: a click on a legend row toggles the
// visibility of its category. Click returns the category of the row hit.
func (p *Plot) Click(pt Point) (string, bool) {
	cat, ok := p.Legend.Hit(pt)
	if !ok {
		return "", false
	}
	p.Legend.Toggle(cat)
	return cat, true
}

// XLabel is the label of the x axis.
func (p *Plot) XLabel() string { return p.XScale.Title }

// YLabel is the label of the y axis.
func (p *Plot) YLabel() string { return p.YScale.Title }

// Draw draws p onto c. The Width x Height user units of p are stretched
// to fill c.
func (p *Plot) Draw(c draw.Canvas) {
	f := geom.Frame{Canvas: c, Width: p.Width, Height: p.Height}
	for _, g := range p.geoms() {
		g.Draw(f)
	}
}

// Save draws p onto a new width x height canvas of the given format
// ("svg", "png", "pdf", "eps", "jpg", "tif") and writes it to w.
func (p *Plot) Save(w io.Writer, format string, width, height vg.Length) error {
	cw, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	p.Draw(draw.New(cw))
	_, err = cw.WriteTo(w)
	return err
}

// geoms returns everything to draw, back to front.
func (p *Plot) geoms() []geom.Geom {
	sty := p.Style
	w, h, m := p.Width, p.Height, p.Margin
	var gs []geom.Geom

	if sty.Background != nil {
		gs = append(gs, geom.Rectangle{X1: w, Y1: h, Default: geom.BoxStyle{Fill: sty.Background}})
	}

	// The markers.
	xy := make(plotter.XYs, len(p.Markers))
	for i, mk := range p.Markers {
		xy[i].X, xy[i].Y = mk.Center.X, mk.Center.Y
	}
	selection := p.Brush.Selected()
	gs = append(gs, geom.Point{
		XY:        xy,
		Color:     func(i int) color.Color { return p.Markers[i].Fill },
		Alpha:     func(i int) float64 { return p.Legend.Opacity(p.Markers[i].Category) },
		Radius:    func(i int) float64 { return p.Markers[i].Radius },
		Highlight: selection.Contains,
		Default:   sty.Marker.GlyphStyle,
		Ring:      sty.Marker.Ring,
	})

	// Axes, axis labels and the title.
	gs = append(gs,
		geom.Axis{
			Orientation: geom.Bottom,
			Position:    h - m,
			From:        p.XScale.Range.Min,
			To:          p.XScale.Range.Max,
			Map:         p.XScale.Map,
			Ticks:       p.XScale.Ticks(),
			Style:       sty.XAxis,
		},
		geom.Axis{
			Orientation: geom.Left,
			Position:    m,
			From:        p.YScale.Range.Min,
			To:          p.YScale.Range.Max,
			Map:         p.YScale.Map,
			Ticks:       p.YScale.Ticks(),
			Style:       sty.YAxis,
		},
		geom.Text{X: w / 2, Y: h - 10, Text: p.XLabel(), Style: sty.XLabel},
		geom.Text{X: 15, Y: h / 2, Text: p.YLabel(), Style: sty.YLabel},
		geom.Text{X: w / 2, Y: 30, Text: p.Title, Style: sty.Title},
	)

	// The brush region.
	if r, ok := p.Brush.Region(); ok {
		gs = append(gs, geom.Rectangle{
			X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y,
			Default: sty.Brush,
		})
	}

	// The legend.
	for _, e := range p.Legend.Entries {
		s := e.Swatch
		gs = append(gs,
			geom.Rectangle{
				X0: s.Min.X, Y0: s.Min.Y, X1: s.Max.X, Y1: s.Max.Y,
				Default: geom.BoxStyle{Fill: e.Color},
			},
			geom.Text{X: e.Label.X, Y: e.Label.Y, Text: e.Category, Style: sty.Legend.Label},
		)
	}

	return gs
}
