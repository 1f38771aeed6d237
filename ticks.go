package scatter

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// DefaultTickCount is the approximate number of ticks drawn on an axis.
const DefaultTickCount = 6

// Ticks is a plot.Ticker producing about N nicely rounded major ticks
// inside [min, max]. The tick distance is 1, 2 or 5 times a power of ten,
// whichever comes closest to (max-min)/N, so the actual number of ticks
// ranges from roughly N/2 to 2N.
type Ticks struct {
	N int
}

var _ plot.Ticker = Ticks{}

// Ticks implements plot.Ticker.
func (t Ticks) Ticks(min, max float64) []plot.Tick {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []plot.Tick{{Value: min, Label: FormatTick(min, 0)}}
	}
	n := t.N
	if n < 1 {
		n = DefaultTickCount
	}

	step := tickStep(min, max, n)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []plot.Tick{
			{Value: min, Label: FormatTick(min, max-min)},
			{Value: max, Label: FormatTick(max, max-min)},
		}
	}

	// A little slack keeps rounding errors from dropping the edge ticks.
	slack := (max - min) * 1e-10
	first := math.Ceil((min - slack) / step)
	last := math.Floor((max + slack) / step)
	count := int(last-first) + 1
	if count < 1 {
		// No multiple of step inside, only possible for N = 1.
		mid := (min + max) / 2
		return []plot.Tick{{Value: mid, Label: FormatTick(mid, max-min)}}
	}
	major := vec.Linspace(first*step, last*step, count)

	ticks := make([]plot.Tick, len(major))
	for i, v := range major {
		v = math.Max(min, math.Min(max, v))
		if v == 0 {
			v = 0 // no -0
		}
		ticks[i] = plot.Tick{Value: v, Label: FormatTick(v, step)}
	}
	return ticks
}

// tickStep returns the 1, 2 or 5 times a power of ten closest to
// (max-min)/n.
func tickStep(min, max float64, n int) float64 {
	raw := (max - min) / float64(n)
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	switch e := raw / power; {
	case e >= math.Sqrt(50):
		return 10 * power
	case e >= math.Sqrt(10):
		return 5 * power
	case e >= math.Sqrt2:
		return 2 * power
	}
	return power
}

// FormatTick formats v with thousands separators and as many decimals as
// the tick distance step requires.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	p := math.Pow(10, float64(decimals))
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // no "-0"
	}
	return humanize.CommafWithDigits(v, decimals)
}
