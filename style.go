package scatter

import (
	"image/color"
	"math"

	"github.com/vdobler/scatter/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Plot is drawn onto a gonum canvas.
// Lengths are in user units of the plot.
type Style struct {
	Background color.Color

	Title  draw.TextStyle
	XLabel draw.TextStyle
	YLabel draw.TextStyle

	XAxis geom.AxisStyle
	YAxis geom.AxisStyle

	Marker struct {
		draw.GlyphStyle
		Ring draw.GlyphStyle // drawn around selected markers
	}

	Brush geom.BoxStyle

	Legend struct {
		Label   draw.TextStyle
		Swatch  float64 // edge length of the color block
		Pitch   float64 // vertical distance of two rows
		LabelDX float64 // offset of the label from the row origin
		LabelDY float64
		OffsetX float64 // distance of the legend from the right edge
	}
}

// DefaultStyle returns the default plot style: a 16 point title, 14 point
// axis labels and legend entries and 10 point tick labels, all black.
func DefaultStyle() Style {
	font := func(name string, size vg.Length) vg.Font {
		f, err := vg.MakeFont(name, size)
		if err != nil {
			panic(err)
		}
		return f
	}
	titleFont := font("Helvetica", 16)
	labelFont := font("Helvetica", 14)
	tickFont := font("Helvetica", 10)

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YCenter

	s.XLabel.Color = color.Black
	s.XLabel.Font = labelFont
	s.XLabel.XAlign = draw.XCenter
	s.XLabel.YAlign = draw.YCenter

	s.YLabel.Color = color.Black
	s.YLabel.Font = labelFont
	s.YLabel.Rotation = math.Pi / 2
	s.YLabel.XAlign = draw.XCenter
	s.YLabel.YAlign = draw.YCenter

	s.XAxis.Line = draw.LineStyle{Color: color.Black, Width: vg.Length(1)}
	s.XAxis.Tick = draw.LineStyle{Color: color.Black, Width: vg.Length(1)}
	s.XAxis.TickLength = 6
	s.XAxis.Label.Color = color.Black
	s.XAxis.Label.Font = tickFont
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YTop

	s.YAxis.Line = s.XAxis.Line
	s.YAxis.Tick = s.XAxis.Tick
	s.YAxis.TickLength = 6
	s.YAxis.Label.Color = color.Black
	s.YAxis.Label.Font = tickFont
	s.YAxis.Label.XAlign = draw.XRight
	s.YAxis.Label.YAlign = draw.YCenter

	s.Marker.Color = color.Gray16{0x4444}
	s.Marker.Radius = vg.Length(4)
	s.Marker.Shape = draw.CircleGlyph{}
	s.Marker.Ring.Color = color.Black
	s.Marker.Ring.Radius = vg.Length(2)
	s.Marker.Ring.Shape = draw.RingGlyph{}

	s.Brush.Fill = color.NRGBA{0x77, 0x77, 0x77, 0x4c}
	s.Brush.Border = draw.LineStyle{Color: color.White, Width: vg.Length(1)}

	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = labelFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YCenter
	s.Legend.Swatch = 40
	s.Legend.Pitch = 45
	s.Legend.LabelDX = 50
	s.Legend.LabelDY = 25
	s.Legend.OffsetX = 200

	return s
}
