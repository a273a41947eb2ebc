// Package model defines the bar and series types shared by the frame,
// indicator, and store packages.
package model

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned (wrapped) when a Field selector does not
// name a bar field.
var ErrUnknownField = errors.New("unknown field")

// Bar represents one OHLCV record for a single time period.
// Bars are value types: nothing downstream mutates them.
type Bar struct {
	T      int64   `json:"t"` // unix seconds, bucket start
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// Series is an ordered sequence of bars. Index order is chronological
// order: index 0 is the oldest bar, the last index is the newest.
// Indicator functions never modify a Series they are given.
type Series []Bar

// Field selects a numeric bar field by its short column name.
type Field string

// Bar field selectors, matching the CSV/JSON column names.
const (
	FieldTime   Field = "t"
	FieldOpen   Field = "o"
	FieldHigh   Field = "h"
	FieldLow    Field = "l"
	FieldClose  Field = "c"
	FieldVolume Field = "v"
)

// Valid reports whether f names a known bar field.
func (f Field) Valid() bool {
	switch f {
	case FieldTime, FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume:
		return true
	}
	return false
}

// Value returns the named field of b. The second return is false when
// f is not a known field.
func (b Bar) Value(f Field) (float64, bool) {
	switch f {
	case FieldTime:
		return float64(b.T), true
	case FieldOpen:
		return b.Open, true
	case FieldHigh:
		return b.High, true
	case FieldLow:
		return b.Low, true
	case FieldClose:
		return b.Close, true
	case FieldVolume:
		return b.Volume, true
	}
	return 0, false
}

// Values extracts one numeric column from the series.
func (s Series) Values(f Field) ([]float64, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("series values: %w %q", ErrUnknownField, string(f))
	}
	out := make([]float64, len(s))
	for i, b := range s {
		out[i], _ = b.Value(f)
	}
	return out, nil
}

// Closes is shorthand for Values(FieldClose) without the error path.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}
