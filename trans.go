// Scale Transformations
//
// Two transformations are provided: a linear one and a square root one
// which makes marker areas proportional to values.
package scatter

import (
	"math"
)

// A Transformation bundles two functions Trans and Inverse. Trans maps
// the interval from onto the interval to; Inverse undoes Trans.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
// A degenerate from maps everything to the center of to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		if from.Degenerate() {
			if math.IsNaN(x) {
				return math.NaN()
			}
			return to.Mid()
		}
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		if from.Degenerate() || to.Degenerate() {
			if math.IsNaN(y) {
				return math.NaN()
			}
			return from.Min
		}
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// SqrtTrans implements a square root transformation suitable to map the
// size aesthetic to the radius of a point: the square root is applied to
// the edges of from and to x before interpolating linearly into to.
// Negative values are handled symmetrically.
var SqrtTrans = Transformation{
	Name: "SquareRoot",
	Trans: func(from, to Interval, x float64) float64 {
		root := Interval{signedSqrt(from.Min), signedSqrt(from.Max)}
		return LinearTrans.Trans(root, to, signedSqrt(x))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		root := Interval{signedSqrt(from.Min), signedSqrt(from.Max)}
		r := LinearTrans.Inverse(root, to, y)
		return math.Copysign(r*r, r)
	},
}

func signedSqrt(x float64) float64 {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}
