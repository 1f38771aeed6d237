package scatter_test

import (
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/vdobler/scatter"
	"github.com/vdobler/scatter/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func countries() data.Records {
	return data.Records{
		{"gdp": 0, "life": 0, "pop": 1, "continent": "Europe"},
		{"gdp": 10, "life": 10, "pop": 4, "continent": "Asia"},
	}
}

func ExampleNew() {
	opts := scatter.DefaultOptions()
	opts.Title = "Life expectancy"
	opts.X = scatter.Column("gdp")
	opts.Y = scatter.Column("life")
	opts.Radius = scatter.Column("pop")
	opts.Color = scatter.CategoryColumn("continent")

	p, err := scatter.New(countries(), opts)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range p.Markers {
		fmt.Printf("%s %v (%.1f,%.1f) r=%.0f\n",
			m.ID(), m.Classes(), m.Center.X, m.Center.Y, m.Radius)
	}
	// Output:
	// id_0 [cls_0 Europe] (90.9,909.1) r=4
	// id_1 [cls_1 Asia] (909.1,90.9) r=12
}

func ExampleBrush() {
	p, err := scatter.Render(draw.New(vgimg.New(200, 200)), countries(),
		"Brushed", "gdp", "life", "pop", nil, "continent", 50)
	if err != nil {
		log.Fatal(err)
	}

	p.Brush.Start()
	p.Brush.Move(scatter.R(50, 50, 500, 950))
	fmt.Println(p.Brush.Selected())
	p.Brush.End(scatter.R(50, 50, 950, 950))
	fmt.Println(p.Brush.Selected())
	p.Brush.Start()
	fmt.Println(p.Brush.Selected())
	// Output:
	// [0]
	// [0 1]
	// []
}

func ExamplePlot_Click() {
	p, err := scatter.Render(draw.New(vgimg.New(200, 200)), countries(),
		"Legend", "gdp", "life", "pop", []string{"Asia", "Europe"}, "continent", 50)
	if err != nil {
		log.Fatal(err)
	}

	cat, _ := p.Click(scatter.Point{X: 820, Y: 70})
	fmt.Println(cat, p.Legend.Opacity(cat))
	cat, _ = p.Click(scatter.Point{X: 820, Y: 70})
	fmt.Println(cat, p.Legend.Opacity(cat))
	// Output:
	// Asia 0.2
	// Asia 1
}

// Draw a plot of a go-gg table into a PNG file.
func Example_table() {
	t := new(table.Builder).
		Add("x", []float64{1, 2, 3, 4, 5, 6}).
		Add("y", []float64{2.5, 3.1, 1.7, 4.8, 4.4, 5.9}).
		Add("size", []int{10, 20, 5, 40, 15, 25}).
		Add("kind", []string{"a", "b", "a", "c", "b", "a"}).
		Done()
	records, err := data.FromTable(t)
	if err != nil {
		log.Fatal(err)
	}

	img := vgimg.New(15*vg.Centimeter, 15*vg.Centimeter)
	dc := draw.New(img)
	p, err := scatter.Render(dc, records, "go-gg table", "x", "y", "size", nil, "kind", 50)
	if err != nil {
		log.Fatal(err)
	}
	p.Brush.End(scatter.R(300, 50, 950, 600))
	p.Click(scatter.Point{X: 820, Y: 70})
	p.Draw(dc) // the second drawing shows selection and dimmed category

	file, err := os.Create("scatter.png")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		log.Fatal(err)
	}
}
