package scatter

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalContainsIsInclusive(t *testing.T) {
	i := Interval{2, 4}
	assert.True(t, i.Contains(2))
	assert.True(t, i.Contains(4))
	assert.False(t, i.Contains(4.0000001))
	assert.True(t, Interval{4, 2}.Contains(2), "reversed interval")
}

func TestLinearScalePadding(t *testing.T) {
	s := NewScale(Linear, Interval{50, 950})
	s.Expand.Relative = 0.05
	s.UpdateData(0, 5, 10)
	s.autoscale(Interval{-1, 1})

	assert.Equal(t, Interval{-0.5, 10.5}, s.Domain)
	assert.InDelta(t, 50, s.Map(-0.5), 1e-9)
	assert.InDelta(t, 950, s.Map(10.5), 1e-9)
	assert.InDelta(t, 500, s.Map(5), 1e-9)
	assert.InDelta(t, 5, s.Invert(500), 1e-9)
}

func TestInvertedRange(t *testing.T) {
	s := NewScale(Linear, Interval{950, 50})
	s.UpdateData(0, 10)
	s.autoscale(Interval{-1, 1})

	assert.InDelta(t, 950, s.Map(0), 1e-9)
	assert.InDelta(t, 50, s.Map(10), 1e-9)
	assert.Less(t, s.Map(8), s.Map(2), "larger values are further up")
}

func TestDegenerateScale(t *testing.T) {
	s := NewScale(Linear, Interval{50, 950})
	s.Expand.Relative = 0.05
	s.UpdateData(3, 3, 3)
	s.autoscale(Interval{-1, 1})

	assert.Equal(t, Interval{3, 3}, s.Domain, "zero span gets zero padding")
	for _, x := range []float64{3, -100, 100} {
		got := s.Map(x)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, 500.0, got)
	}
	assert.Equal(t, 3.0, s.Invert(50))
	assert.Equal(t, 3.0, s.Invert(950))
	assert.Len(t, s.Ticks(), 1)
}

func TestScaleWithoutData(t *testing.T) {
	s := NewScale(Linear, Interval{50, 950})
	s.Expand.Relative = 0.05
	s.autoscale(Interval{-1, 1})

	assert.False(t, s.HasData())
	assert.Equal(t, Interval{-1, 1}, s.Domain)
	assert.Equal(t, 500.0, s.Map(0))
}

func TestSqrtScaleIsNotExpanded(t *testing.T) {
	s := NewScale(Sqrt, Interval{4, 12})
	s.Expand.Relative = 0.05
	s.UpdateData(1, 4)
	s.autoscale(Interval{0, 1})

	assert.Equal(t, Interval{1, 4}, s.Domain)
	assert.Equal(t, 4.0, s.Map(1))
	assert.Equal(t, 12.0, s.Map(4))
	assert.InDelta(t, 2.25, s.Invert(8), 1e-9)
}
