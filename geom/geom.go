// Package geom provides the basic geometric objects a scatter plot is
// drawn from: point markers, rectangles, text and axes.
//
// All geoms are positioned in user units of a Frame: a fixed size
// coordinate system (1000 x 1000 for a default plot) whose origin is the
// top left corner and whose y axis grows downwards, like SVG pixels.
// The Frame maps these units onto a gonum draw.Canvas.
//
// Optional per point aesthetics are functions of the point index, in the
// spirit of ggplot2's aesthetics.
package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Frame

// Frame is a viewport of Width x Height user units onto Canvas.
type Frame struct {
	Canvas        draw.Canvas
	Width, Height float64
}

// Map maps the user unit coordinate (x,y) to a canvas point.
func (f Frame) Map(x, y float64) vg.Point {
	size := f.Canvas.Size()
	return vg.Point{
		X: f.Canvas.Min.X + vg.Length(x/f.Width)*size.X,
		Y: f.Canvas.Max.Y - vg.Length(y/f.Height)*size.Y,
	}
}

// Length maps a length in user units to a canvas length. Non square
// frames use the smaller of the two scale factors.
func (f Frame) Length(l float64) vg.Length {
	size := f.Canvas.Size()
	sx, sy := float64(size.X)/f.Width, float64(size.Y)/f.Height
	if sy < sx {
		sx = sy
	}
	return vg.Length(l * sx)
}

// ----------------------------------------------------------------------------
// Point

// Point draws one marker per element of XY.
type Point struct {
	XY plotter.XYer

	Color     func(i int) color.Color // fill color, nil uses Default.Color
	Alpha     func(i int) float64     // opacity in [0,1], nil is opaque
	Radius    func(i int) float64     // in user units, nil uses Default.Radius
	Highlight func(i int) bool        // highlighted points get a ring

	Default draw.GlyphStyle
	Ring    draw.GlyphStyle
}

// Draw implements Geom.
func (p Point) Draw(f Frame) {
	shape := p.Default.Shape
	if shape == nil {
		shape = draw.CircleGlyph{}
	}
	ringShape := p.Ring.Shape
	if ringShape == nil {
		ringShape = draw.RingGlyph{}
	}

	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		center := f.Map(x, y)

		col := p.Default.Color
		if p.Color != nil {
			col = p.Color(i)
		}
		alpha := 1.0
		if p.Alpha != nil {
			alpha = p.Alpha(i)
		}
		col, ok := WithAlpha(col, alpha)
		if !ok {
			continue
		}

		radius := p.Default.Radius
		if p.Radius != nil {
			radius = f.Length(p.Radius(i))
		}
		if radius <= 0 {
			continue
		}

		f.Canvas.DrawGlyph(draw.GlyphStyle{Color: col, Radius: radius, Shape: shape}, center)

		if p.Highlight != nil && p.Highlight(i) && p.Ring.Color != nil {
			ring, ok := WithAlpha(p.Ring.Color, alpha)
			if !ok {
				continue
			}
			f.Canvas.DrawGlyph(draw.GlyphStyle{
				Color:  ring,
				Radius: radius + p.Ring.Radius,
				Shape:  ringShape,
			}, center)
		}
	}
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws an axis parallel rectangle between the user unit corners
// (X0,Y0) and (X1,Y1). The border is drawn inside the rectangle.
type Rectangle struct {
	X0, Y0, X1, Y1 float64

	Default BoxStyle
}

// Draw implements Geom.
func (r Rectangle) Draw(f Frame) {
	rect := CanonicRectangle(vg.Rectangle{Min: f.Map(r.X0, r.Y0), Max: f.Map(r.X1, r.Y1)})

	if r.Default.Fill != nil {
		f.Canvas.SetColor(r.Default.Fill)
		f.Canvas.Fill(rect.Path())
	}

	border := r.Default.Border
	if border.Color == nil || border.Width <= 0 {
		return
	}
	w := 0.499 * border.Width
	rect.Min.X += w
	rect.Min.Y += w
	rect.Max.X -= w
	rect.Max.Y -= w
	f.Canvas.SetColor(border.Color)
	f.Canvas.SetLineWidth(border.Width)
	f.Canvas.SetLineDash(border.Dashes, border.DashOffs)
	f.Canvas.Stroke(rect.Path())
}

// ----------------------------------------------------------------------------
// Text

// Text draws a single label at the user unit position (X,Y).
type Text struct {
	X, Y float64
	Text string

	Style draw.TextStyle
}

// Draw implements Geom.
func (t Text) Draw(f Frame) {
	if t.Text == "" {
		return
	}
	f.Canvas.FillText(t.Style, f.Map(t.X, t.Y), t.Text)
}

// ----------------------------------------------------------------------------
// Axis

// Orientation selects where an axis is drawn.
type Orientation int

const (
	Bottom Orientation = iota // a horizontal axis with ticks below the line
	Left                      // a vertical axis with ticks left of the line
)

// AxisStyle controls the appearance of an Axis.
type AxisStyle struct {
	Line       draw.LineStyle
	Tick       draw.LineStyle
	TickLength float64 // in user units
	Label      draw.TextStyle
}

// Axis draws an axis line spanning From to To (user units along the axis)
// at Position (the y coordinate of a Bottom axis, the x coordinate of a
// Left one) together with its ticks. Map turns a tick value into a user
// unit coordinate along the axis.
type Axis struct {
	Orientation Orientation
	Position    float64
	From, To    float64
	Map         func(v float64) float64
	Ticks       []plot.Tick

	Style AxisStyle
}

// Draw implements Geom.
func (a Axis) Draw(f Frame) {
	line := func(x0, y0, x1, y1 float64, sty draw.LineStyle) {
		if sty.Color == nil || sty.Width <= 0 {
			return
		}
		p, q := f.Map(x0, y0), f.Map(x1, y1)
		f.Canvas.StrokeLine2(sty, p.X, p.Y, q.X, q.Y)
	}

	length := a.Style.TickLength
	switch a.Orientation {
	case Bottom:
		line(a.From, a.Position, a.To, a.Position, a.Style.Line)
	case Left:
		line(a.Position, a.From, a.Position, a.To, a.Style.Line)
	}

	for _, tick := range a.Ticks {
		v := a.Map(tick.Value)
		tl := length
		if tick.IsMinor() {
			tl /= 2
		}
		switch a.Orientation {
		case Bottom:
			line(v, a.Position, v, a.Position+tl, a.Style.Tick)
			if !tick.IsMinor() {
				f.Canvas.FillText(a.Style.Label, f.Map(v, a.Position+tl), tick.Label)
			}
		case Left:
			line(a.Position-tl, v, a.Position, v, a.Style.Tick)
			if !tick.IsMinor() {
				f.Canvas.FillText(a.Style.Label, f.Map(a.Position-tl, v), tick.Label)
			}
		}
	}
}
