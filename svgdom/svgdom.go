// Package svgdom renders a scatter.Plot as an SVG document whose elements
// can be addressed like the DOM of a web page: every marker carries the
// id "id_<i>" and the classes "cls_<i>" and its category, selected markers
// have the additional class "selected". Legend rows have the class
// "legend-row" plus the category class and carry the unchanged category
// in a data-category attribute. Category classes are made from the
// category by scatter.CategoryClass, so "United States" becomes
// "United_States".
//
// A Surface accumulates renderings. Rendering a plot twice onto the same
// surface yields every element twice; call Reset to start over.
package svgdom

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/rs/zerolog"
	"github.com/vdobler/scatter"
)

// Surface is an SVG document of Width x Height user units.
type Surface struct {
	Width, Height float64

	log     zerolog.Logger
	body    bytes.Buffer
	canvas  *svg.SVG
	renders int
}

// NewSurface returns an empty width x height surface.
func NewSurface(width, height float64) *Surface {
	s := &Surface{Width: width, Height: height, log: zerolog.Nop()}
	s.canvas = svg.New(&s.body)
	return s
}

// WithLogger sets the logger of s and returns s.
func (s *Surface) WithLogger(log zerolog.Logger) *Surface {
	s.log = log
	return s
}

// Renders is the number of plots rendered since the last Reset.
func (s *Surface) Renders() int { return s.renders }

// Reset removes everything rendered so far.
func (s *Surface) Reset() {
	s.body.Reset()
	s.renders = 0
}

// WriteTo writes the complete SVG document to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var out bytes.Buffer
	doc := svg.New(&out)
	doc.Start(s.Width, s.Height,
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(s.Width), num(s.Height)))
	out.Write(s.body.Bytes())
	doc.End()
	return out.WriteTo(w)
}

// Render appends a group with all elements of p to s: markers, axes,
// axis labels, the title, the brush and the legend. The current
// selection and legend state of p determine marker classes and opacity.
func (s *Surface) Render(p *scatter.Plot) {
	c := s.canvas
	c.Group(`class="scatter"`)
	s.markers(p)
	s.axes(p)
	s.labels(p)
	s.brush(p)
	s.legend(p)
	c.Gend()

	s.renders++
	s.log.Debug().Int("markers", len(p.Markers)).Int("renders", s.renders).Msg("svg render")
}

func (s *Surface) markers(p *scatter.Plot) {
	c := s.canvas
	selection := p.Brush.Selected()
	c.Group(`class="markers"`)
	for _, m := range p.Markers {
		class := m.Classes()
		if selection.Contains(m.Index) {
			class = append(class, "selected")
		}
		c.Gtransform("translate(" + num(m.Center.X) + "," + num(m.Center.Y) + ")")
		c.Circle(0, 0, m.Radius,
			attr("id", m.ID()),
			attr("class", strings.Join(class, " ")),
			attr("fill", hex(m.Fill)),
			attr("opacity", num(p.Legend.Opacity(m.Category))))
		c.Gend()
	}
	c.Gend()
}

func (s *Surface) axes(p *scatter.Plot) {
	c := s.canvas
	const tick = 6

	// x axis along the bottom
	c.Group(`class="axis x"`, attr("transform", "translate(0,"+num(p.Height-p.Margin)+")"))
	c.Line(p.XScale.Range.Min, 0, p.XScale.Range.Max, 0, `stroke="black"`)
	for _, t := range p.XScale.Ticks() {
		x := p.XScale.Map(t.Value)
		c.Line(x, 0, x, tick, `stroke="black"`)
		if t.Label != "" {
			c.Text(x, tick+12, t.Label, `text-anchor="middle"`, `font-size="10"`)
		}
	}
	c.Gend()

	// y axis along the left
	c.Group(`class="axis y"`, attr("transform", "translate("+num(p.Margin)+",0)"))
	c.Line(0, p.YScale.Range.Min, 0, p.YScale.Range.Max, `stroke="black"`)
	for _, t := range p.YScale.Ticks() {
		y := p.YScale.Map(t.Value)
		c.Line(-tick, y, 0, y, `stroke="black"`)
		if t.Label != "" {
			c.Text(-tick-3, y, t.Label, `text-anchor="end"`, `dominant-baseline="middle"`, `font-size="10"`)
		}
	}
	c.Gend()
}

func (s *Surface) labels(p *scatter.Plot) {
	c := s.canvas
	c.Text(p.Width/2, p.Height-10, p.XLabel(), `class="axis-label x"`, `text-anchor="middle"`, `font-size="14"`)
	// Rotated by -90 degrees (15, H/2) becomes (-H/2, 15).
	c.Text(-p.Height/2, 15, p.YLabel(), `class="axis-label y"`, `transform="rotate(-90)"`,
		`text-anchor="middle"`, `font-size="14"`)
	c.Text(p.Width/2, 30, p.Title, `class="plot-title"`, `text-anchor="middle"`, `font-size="16"`)
}

func (s *Surface) brush(p *scatter.Plot) {
	c := s.canvas
	e := p.Brush.Extent
	c.Group(`class="brush"`)
	c.Rect(e.Min.X, e.Min.Y, e.Dx(), e.Dy(), `class="overlay"`, `fill="none"`, `pointer-events="all"`)
	if r, ok := p.Brush.Region(); ok {
		c.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), `class="selection"`,
			`fill="#777"`, `fill-opacity="0.3"`, `stroke="#fff"`)
	}
	c.Gend()
}

func (s *Surface) legend(p *scatter.Plot) {
	c := s.canvas
	c.Group(`class="legend"`)
	for _, e := range p.Legend.Entries {
		sw := e.Swatch
		c.Group(attr("class", "legend-row "+scatter.CategoryClass(e.Category)),
			attr("data-category", e.Category),
			attr("transform", "translate("+num(sw.Min.X)+","+num(sw.Min.Y)+")"))
		c.Rect(0, 0, sw.Dx(), sw.Dy(), attr("fill", hex(e.Color)))
		c.Text(e.Label.X-sw.Min.X, e.Label.Y-sw.Min.Y, e.Category, `font-size="14"`)
		c.Gend()
	}
	c.Gend()
}

// attr formats the attribute name="value" with value escaped.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// num formats v with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hex returns the #rrggbb notation of c. Transparency is dropped.
func hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
