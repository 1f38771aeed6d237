package scatter

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Tableau10 is the ten color categorical palette of Tableau, the default
// palette of the color channel.
var Tableau10 palette.Palette = tableau10{}

type tableau10 struct{}

func (tableau10) Colors() []color.Color {
	return []color.Color{
		color.RGBA{0x4e, 0x79, 0xa7, 0xff},
		color.RGBA{0xf2, 0x8e, 0x2c, 0xff},
		color.RGBA{0xe1, 0x57, 0x59, 0xff},
		color.RGBA{0x76, 0xb7, 0xb2, 0xff},
		color.RGBA{0x59, 0xa1, 0x4f, 0xff},
		color.RGBA{0xed, 0xc9, 0x49, 0xff},
		color.RGBA{0xaf, 0x7a, 0xa1, 0xff},
		color.RGBA{0xff, 0x9d, 0xa7, 0xff},
		color.RGBA{0x9c, 0x75, 0x5f, 0xff},
		color.RGBA{0xba, 0xb0, 0xab, 0xff},
	}
}

// PaletteByName returns the named palette: "tableau10" or "moreland"
// (ten colors of Moreland's smooth blue-red diverging map).
func PaletteByName(name string) (palette.Palette, error) {
	switch strings.ToLower(name) {
	case "", "tableau10":
		return Tableau10, nil
	case "moreland":
		return moreland.SmoothBlueRed().Palette(10), nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

// ----------------------------------------------------------------------------
// Categorical

// Categorical is an ordinal color scale: the i'th value of its domain gets
// the i'th palette color, wrapping around if there are more values than
// colors. Looking up a value not in the domain appends it to the domain.
type Categorical struct {
	domain []string
	index  map[string]int
	colors []color.Color
}

// NewCategorical returns a color scale for domain using the colors of p.
// Duplicates in domain are ignored.
func NewCategorical(domain []string, p palette.Palette) *Categorical {
	c := &Categorical{index: make(map[string]int, len(domain))}
	if p != nil {
		c.colors = p.Colors()
	}
	for _, v := range domain {
		c.lookup(v)
	}
	return c
}

// Color returns the color of v.
func (c *Categorical) Color(v string) color.Color {
	i := c.lookup(v)
	if len(c.colors) == 0 {
		return color.Black
	}
	return c.colors[i%len(c.colors)]
}

// Domain returns the values known to c in order of assignment.
func (c *Categorical) Domain() []string {
	return append([]string(nil), c.domain...)
}

func (c *Categorical) lookup(v string) int {
	if i, ok := c.index[v]; ok {
		return i
	}
	i := len(c.domain)
	c.index[v] = i
	c.domain = append(c.domain, v)
	return i
}
