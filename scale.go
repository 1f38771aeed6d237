package scatter

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// Scale maps data values to display values: a pixel coordinate for the
// x and y channels or a marker radius for the size channel.
type Scale struct {
	// Title is the scale's title, used as the axis label.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Domain is the input interval of the scale. It is Data expanded
	// by autoscaling.
	Domain Interval

	// Range is the output interval. It may be inverted (Min > Max),
	// e.g. for y coordinates which grow downwards.
	Range Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling controls how Data is expanded into Domain.
	Autoscaling

	// Ticker is responsible for generating the ticks.
	Ticker plot.Ticker

	trans Transformation
}

// NewScale returns a new scale of type st mapping to rng. It autoscales
// to the actual data without expansion.
func NewScale(st ScaleType, rng Interval) *Scale {
	return &Scale{
		Data:      unsetInterval(),
		Domain:    unsetInterval(),
		Range:     rng,
		ScaleType: st,
		Ticker:    Ticks{N: DefaultTickCount},
	}
}

// UpdateData updates s to cover all xs.
func (s *Scale) UpdateData(xs ...float64) {
	s.Data.Update(xs...)
}

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	return s.Data.IsSet()
}

// Map maps x from the domain of s to its range.
// Values outside the domain are extrapolated. A degenerate domain maps
// every value to the middle of the range.
func (s *Scale) Map(x float64) float64 {
	return s.transformation().Trans(s.Domain, s.Range, x)
}

// Invert maps y from the range of s back to its domain.
func (s *Scale) Invert(y float64) float64 {
	return s.transformation().Inverse(s.Domain, s.Range, y)
}

// Ticks returns the ticks of the domain of s.
func (s *Scale) Ticks() []plot.Tick {
	if s.Ticker == nil || !s.Domain.IsSet() {
		return nil
	}
	return s.Ticker.Ticks(s.Domain.Min, s.Domain.Max)
}

// InRange reports whether x lies in the domain of s.
func (s *Scale) InRange(x float64) bool {
	return s.Domain.Contains(x)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Domain=[%.2f:%.2f] Data=[%.2f:%.2f] Range=[%.2f:%.2f] %s %q",
		s.Domain.Min, s.Domain.Max, s.Data.Min, s.Data.Max,
		s.Range.Min, s.Range.Max, s.ScaleType, s.Title)
}

func (s *Scale) transformation() Transformation {
	if s.trans.Trans == nil {
		s.buildConversionFuncs()
	}
	return s.trans
}

func (s *Scale) buildConversionFuncs() {
	switch s.ScaleType {
	case Linear:
		s.trans = LinearTrans
	case Sqrt:
		s.trans = SqrtTrans
	default:
		panic(s.ScaleType)
	}
}

// autoscale turns the data range into the scale's domain. Without data
// the domain is set to fallback.
func (s *Scale) autoscale(fallback Interval) {
	if !s.HasData() {
		s.Domain = fallback
		s.buildConversionFuncs()
		return
	}

	ext := s.Expand.Relative*s.Data.Span() + s.Expand.Absolute
	s.Domain = s.Data
	switch s.ScaleType {
	case Linear:
		s.Domain.Min -= ext
		s.Domain.Max += ext
	case Sqrt:
		// Expansion would change the area ratio of the markers.
	default:
		panic(s.ScaleType)
	}
	s.buildConversionFuncs()
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Two NaN edges are
// considered equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Span is the signed length of i.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Mid is the center of i.
func (i Interval) Mid() float64 { return (i.Min + i.Max) / 2 }

// Degenerate reports whether i collapses to a single point.
func (i Interval) Degenerate() bool { return i.Min == i.Max }

// Contains reports whether x lies in i, both edges included.
func (i Interval) Contains(x float64) bool {
	lo, hi := i.Min, i.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

// Canonic returns i with Min <= Max.
func (i Interval) Canonic() Interval {
	if i.Min > i.Max {
		i.Min, i.Max = i.Max, i.Min
	}
	return i
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful know scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "sqrt"}[int(st)]
}

const (
	Linear ScaleType = iota
	Sqrt
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the data range of a scale is expanded into its
// domain.
type Autoscaling struct {
	// Expand determines how much the actual data range is expandend on
	// both sides: Relative is a fraction of the data span, Absolute is
	// added in data units.
	Expand struct {
		Absolute float64
		Relative float64
	}
}
