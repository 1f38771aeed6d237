package scatter

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/scatter/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func twoPoints() data.Records {
	return data.Records{
		{"x": 0, "y": 0, "r": 1, "c": "A"},
		{"x": 10, "y": 10, "r": 4, "c": "B"},
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Title = "Test"
	opts.X, opts.Y, opts.Radius = Column("x"), Column("y"), Column("r")
	opts.Color = CategoryColumn("c")
	return opts
}

func recordingCanvas() (*recorder.Canvas, draw.Canvas) {
	rec := &recorder.Canvas{}
	return rec, draw.Canvas{
		Canvas:    rec,
		Rectangle: vg.Rectangle{Max: vg.Point{X: 1000, Y: 1000}},
	}
}

func TestNewScales(t *testing.T) {
	p, err := New(twoPoints(), testOptions())
	require.NoError(t, err)

	assert.Equal(t, Interval{-0.5, 10.5}, p.XScale.Domain)
	assert.Equal(t, Interval{-0.5, 10.5}, p.YScale.Domain)
	assert.Equal(t, Interval{50, 950}, p.XScale.Range)
	assert.Equal(t, Interval{950, 50}, p.YScale.Range)

	assert.Equal(t, 4.0, p.RScale.Map(1))
	assert.Equal(t, 12.0, p.RScale.Map(4))
	assert.Equal(t, 4.0, p.Markers[0].Radius)
	assert.Equal(t, 12.0, p.Markers[1].Radius)

	// y is inverted: the larger value is further up.
	assert.Less(t, p.Markers[1].Center.Y, p.Markers[0].Center.Y)
	assert.Greater(t, p.Markers[1].Center.X, p.Markers[0].Center.X)
}

func TestMarkerIdentity(t *testing.T) {
	p, err := New(twoPoints(), testOptions())
	require.NoError(t, err)

	m := p.Markers[1]
	assert.Equal(t, "id_1", m.ID())
	assert.Equal(t, []string{"cls_1", "B"}, m.Classes())
	assert.Equal(t, Tableau10.Colors()[1], m.Fill)
	assert.Equal(t, Tableau10.Colors()[0], p.Markers[0].Fill)
}

func TestLegendFallsBackToCategories(t *testing.T) {
	rs := data.Records{
		{"x": 1, "y": 1, "r": 1, "c": "DE"},
		{"x": 2, "y": 2, "r": 1, "c": "CH"},
		{"x": 3, "y": 3, "r": 1, "c": "DE"},
		{"x": 4, "y": 4, "r": 1, "c": "AT"},
	}
	p, err := New(rs, testOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"DE", "CH", "AT"}, p.Categories)
	assert.Equal(t, []string{"DE", "CH", "AT"}, p.Legend.Categories())

	e := p.Legend.Entries[1]
	assert.Equal(t, R(800, 95, 840, 135), e.Swatch)
	assert.Equal(t, Point{850, 120}, e.Label)
}

func TestExplicitLegend(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	opts := testOptions()
	opts.Legend = []string{"B", "Z"}
	opts.Logger = &log
	p, err := New(twoPoints(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "Z"}, p.Legend.Categories())
	assert.Equal(t, p.Markers[1].Fill, p.Legend.Entries[0].Color, "same color as the markers")
	assert.Contains(t, buf.String(), "legend entry without data")
}

func TestConstantColumn(t *testing.T) {
	rs := data.Records{
		{"x": 5, "y": 1, "r": 2, "c": "A"},
		{"x": 5, "y": 2, "r": 2, "c": "A"},
		{"x": 5, "y": 3, "r": 2, "c": "A"},
	}
	p, err := New(rs, testOptions())
	require.NoError(t, err)

	assert.Equal(t, Interval{5, 5}, p.XScale.Domain)
	for _, m := range p.Markers {
		assert.False(t, math.IsNaN(m.Center.X))
		assert.Equal(t, 500.0, m.Center.X)
		assert.False(t, math.IsNaN(m.Radius))
		assert.Equal(t, 8.0, m.Radius, "degenerate radius domain maps to the middle")
	}
}

func TestEmptyData(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	opts := testOptions()
	opts.Logger = &log

	p, err := New(nil, opts)
	require.NoError(t, err)
	assert.Empty(t, p.Markers)
	assert.Empty(t, p.Legend.Entries)
	assert.Equal(t, Interval{-1, 1}, p.XScale.Domain)
	assert.Contains(t, buf.String(), "no data")

	_, c := recordingCanvas()
	assert.NotPanics(t, func() { p.Draw(c) })
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(data.Records{{"x": "ten", "y": 1, "r": 1, "c": "A"}}, testOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrNotNumeric)
	assert.Contains(t, err.Error(), `x channel "x"`)

	_, err = New(data.Records{{"x": 1, "y": 1, "c": "A"}}, testOptions())
	assert.ErrorIs(t, err, data.ErrMissingField)

	_, err = New(data.Records{{"x": 1, "y": 1, "r": 1}}, testOptions())
	assert.ErrorIs(t, err, data.ErrMissingField)
}

func TestOptionsValidation(t *testing.T) {
	for name, mod := range map[string]func(*Options){
		"no x":            func(o *Options) { o.X = Channel{} },
		"no color":        func(o *Options) { o.Color = CategoryChannel{} },
		"negative margin": func(o *Options) { o.Margin = -1 },
		"huge margin":     func(o *Options) { o.Margin = 500 },
		"negative ticks":  func(o *Options) { o.Ticks = -2 },
		"radius range":    func(o *Options) { o.RadiusRange = Interval{12, 4} },
		"opacity":         func(o *Options) { o.DimOpacity = 2 },
		"padding":         func(o *Options) { o.Padding = -0.1 },
	} {
		t.Run(name, func(t *testing.T) {
			opts := testOptions()
			mod(&opts)
			_, err := New(twoPoints(), opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestZeroOptionsGetDefaults(t *testing.T) {
	opts := Options{
		X:      Column("x"),
		Y:      Column("y"),
		Radius: Column("r"),
		Color:  CategoryColumn("c"),
	}
	p, err := New(twoPoints(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.Width)
	assert.Equal(t, 0.0, p.Margin)
	assert.Equal(t, Interval{0, 1000}, p.XScale.Range)
	assert.Equal(t, Interval{4, 12}, p.RScale.Range)
	assert.Zero(t, p.Legend.DimOpacity, "dim opacity is used as given")
}

func TestZeroDimOpacityHides(t *testing.T) {
	opts := testOptions()
	opts.DimOpacity = 0
	p, err := New(twoPoints(), opts)
	require.NoError(t, err)

	rec, c := recordingCanvas()
	p.Draw(c)
	shown := len(rec.Actions)

	p.Legend.Toggle("A")
	assert.Zero(t, p.Legend.Opacity("A"))
	rec.Actions = nil
	p.Draw(c)
	assert.Less(t, len(rec.Actions), shown, "hidden markers are not drawn")
}

func TestCategoryClass(t *testing.T) {
	for category, want := range map[string]string{
		"DE":               "DE",
		"United States":    "United_States",
		"  Costa \t Rica ": "Costa_Rica",
		"":                 "_",
		"   ":              "_",
	} {
		assert.Equal(t, want, CategoryClass(category), "%q", category)
	}

	m := Marker{Index: 3, Category: "United States"}
	assert.Equal(t, []string{"cls_3", "United_States"}, m.Classes())
}

func TestDrawTwiceDuplicates(t *testing.T) {
	p, err := New(twoPoints(), testOptions())
	require.NoError(t, err)

	rec, c := recordingCanvas()
	p.Draw(c)
	once := len(rec.Actions)
	require.NotZero(t, once)

	p.Draw(c)
	assert.Equal(t, 2*once, len(rec.Actions), "drawing appends, it never replaces")
}

func TestDrawReflectsInteraction(t *testing.T) {
	p, err := New(twoPoints(), testOptions())
	require.NoError(t, err)

	rec, c := recordingCanvas()
	p.Draw(c)
	plain := len(rec.Actions)

	p.Brush.Start()
	require.True(t, p.Brush.End(R(50, 50, 950, 950)))
	rec.Actions = nil
	p.Draw(c)
	assert.Greater(t, len(rec.Actions), plain, "selection rings and brush region")
}

func TestRender(t *testing.T) {
	rec, c := recordingCanvas()
	p, err := Render(c, twoPoints(), "Title", "x", "y", "r", nil, "c", 50)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Actions)
	assert.Equal(t, "x", p.XLabel())
	assert.Equal(t, "y", p.YLabel())
	assert.Equal(t, []string{"A", "B"}, p.Legend.Categories())

	_, err = Render(c, twoPoints(), "Title", "x", "y", "r", nil, "c", -5)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSave(t *testing.T) {
	p, err := New(twoPoints(), testOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Save(&buf, "svg", 10*vg.Centimeter, 10*vg.Centimeter))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	require.NoError(t, p.Save(&buf, "png", 200, 200))
	assert.Equal(t, "\x89PNG", buf.String()[:4])

	assert.Error(t, p.Save(&buf, "bogus", 200, 200))
}
