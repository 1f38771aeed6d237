// Package data contains the record model of a scatter plot and the
// accessors which turn records into plottable values.
//
// A Record is an opaque mapping from field name to value. Which fields
// serve as x, y, radius and color is decided by the caller through an
// Accessor (numeric channels) or a CategoryAccessor (the color channel).
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingField is returned by accessors if a record lacks the field.
	ErrMissingField = errors.New("missing field")

	// ErrNotNumeric is returned by numeric accessors for values which
	// cannot be used as a finite float64.
	ErrNotNumeric = errors.New("not numeric")
)

// Record is one data point.
type Record map[string]interface{}

// Records is the dataset of a plot.
type Records []Record

// Accessor extracts a numeric value from a record.
type Accessor func(Record) (float64, error)

// CategoryAccessor extracts a categorical value from a record.
type CategoryAccessor func(Record) (string, error)

// Field returns an Accessor reading the named field. Go numeric kinds,
// json.Number and numeric strings are accepted; everything else, NaN and
// infinities included, yields ErrNotNumeric.
func Field(name string) Accessor {
	return func(r Record) (float64, error) {
		v, ok := r[name]
		if !ok {
			return math.NaN(), fmt.Errorf("field %q: %w", name, ErrMissingField)
		}
		x, err := ToFloat(v)
		if err != nil {
			return math.NaN(), fmt.Errorf("field %q: %w", name, err)
		}
		return x, nil
	}
}

// CategoryField returns a CategoryAccessor reading the named field.
// Non-string values are formatted with fmt.
func CategoryField(name string) CategoryAccessor {
	return func(r Record) (string, error) {
		v, ok := r[name]
		if !ok {
			return "", fmt.Errorf("field %q: %w", name, ErrMissingField)
		}
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil
	}
}

// ToFloat converts v to a finite float64.
func ToFloat(v interface{}) (float64, error) {
	var x float64
	switch t := v.(type) {
	case float64:
		x = t
	case float32:
		x = float64(t)
	case int:
		x = float64(t)
	case int8:
		x = float64(t)
	case int16:
		x = float64(t)
	case int32:
		x = float64(t)
	case int64:
		x = float64(t)
	case uint:
		x = float64(t)
	case uint8:
		x = float64(t)
	case uint16:
		x = float64(t)
	case uint32:
		x = float64(t)
	case uint64:
		x = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN(), fmt.Errorf("%q: %w", t, ErrNotNumeric)
		}
		x = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("%q: %w", t, ErrNotNumeric)
		}
		x = f
	default:
		return math.NaN(), fmt.Errorf("%v (%T): %w", v, v, ErrNotNumeric)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN(), fmt.Errorf("%v: %w", x, ErrNotNumeric)
	}
	return x, nil
}

// Values projects all records through a. The first failing record aborts
// the projection; the error names its index.
func Values(rs Records, a Accessor) ([]float64, error) {
	xs := make([]float64, len(rs))
	for i, r := range rs {
		x, err := a(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		xs[i] = x
	}
	return xs, nil
}

// Labels projects all records through a.
func Labels(rs Records, a CategoryAccessor) ([]string, error) {
	ls := make([]string, len(rs))
	for i, r := range rs {
		l, err := a(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ls[i] = l
	}
	return ls, nil
}

// Unique returns the distinct values of labels in order of first appearance.
func Unique(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	u := []string{}
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		u = append(u, l)
	}
	return u
}

// Categories returns the distinct category values of rs in order of
// first appearance.
func Categories(rs Records, a CategoryAccessor) ([]string, error) {
	ls, err := Labels(rs, a)
	if err != nil {
		return nil, err
	}
	return Unique(ls), nil
}
