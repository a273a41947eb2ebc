// Package frame provides the bar-frame surface around the indicator
// engine: series validation, appending derived indicator columns with
// leading no-value padding, dropping warm-up rows, and CSV exchange.
package frame

import (
	"fmt"

	"taframe/internal/model"
)

// Column is one derived series attached to a frame. Values is padded to
// the frame length; a nil entry marks "no value" (the warm-up positions
// a right-aligned indicator cannot fill).
type Column struct {
	Name   string
	Values []any
}

// Frame is a bar series plus zero or more derived columns, all padded
// to the same length.
type Frame struct {
	bars model.Series
	cols []Column
}

// New wraps a bar series in a frame with no derived columns.
func New(bars model.Series) *Frame {
	return &Frame{bars: bars}
}

// Bars returns the underlying series.
func (f *Frame) Bars() model.Series { return f.bars }

// Columns returns the derived columns in append order.
func (f *Frame) Columns() []Column { return f.cols }

// Len returns the row count.
func (f *Frame) Len() int { return len(f.bars) }

// AppendFloats appends a numeric derived series as a named column,
// padding the front with no-value entries so the series stays
// right-aligned with the bars.
func (f *Frame) AppendFloats(name string, vals []float64) error {
	boxed := make([]any, len(vals))
	for i, v := range vals {
		boxed[i] = v
	}
	return f.appendColumn(name, boxed)
}

// AppendBools appends a boolean derived series as a named column.
func (f *Frame) AppendBools(name string, vals []bool) error {
	boxed := make([]any, len(vals))
	for i, v := range vals {
		boxed[i] = v
	}
	return f.appendColumn(name, boxed)
}

// AppendInts appends an integer derived series as a named column.
func (f *Frame) AppendInts(name string, vals []int) error {
	boxed := make([]any, len(vals))
	for i, v := range vals {
		boxed[i] = v
	}
	return f.appendColumn(name, boxed)
}

func (f *Frame) appendColumn(name string, vals []any) error {
	if name == "" {
		return fmt.Errorf("append column: empty name")
	}
	if len(vals) > len(f.bars) {
		return fmt.Errorf("append column %q: %d values for %d rows", name, len(vals), len(f.bars))
	}
	for _, col := range f.cols {
		if col.Name == name {
			return fmt.Errorf("append column: duplicate name %q", name)
		}
	}

	padded := make([]any, len(f.bars))
	copy(padded[len(f.bars)-len(vals):], vals)
	f.cols = append(f.cols, Column{Name: name, Values: padded})
	return nil
}

// Clean returns a new frame with every row dropped that still has a
// no-value entry in any column. Bars and columns stay aligned.
func (f *Frame) Clean() *Frame {
	keep := make([]int, 0, len(f.bars))
rows:
	for i := range f.bars {
		for _, col := range f.cols {
			if col.Values[i] == nil {
				continue rows
			}
		}
		keep = append(keep, i)
	}

	out := &Frame{
		bars: make(model.Series, 0, len(keep)),
		cols: make([]Column, len(f.cols)),
	}
	for j, col := range f.cols {
		out.cols[j] = Column{Name: col.Name, Values: make([]any, 0, len(keep))}
	}
	for _, i := range keep {
		out.bars = append(out.bars, f.bars[i])
		for j := range f.cols {
			out.cols[j].Values = append(out.cols[j].Values, f.cols[j].Values[i])
		}
	}
	return out
}

// Validate checks the shape contract the indicator engine assumes:
// bars in strictly ascending time order with non-negative volume.
func Validate(s model.Series) error {
	for i, b := range s {
		if b.Volume < 0 {
			return fmt.Errorf("validate: negative volume %v at row %d", b.Volume, i)
		}
		if i > 0 && b.T <= s[i-1].T {
			return fmt.Errorf("validate: bars out of order at row %d (t=%d after t=%d)", i, b.T, s[i-1].T)
		}
	}
	return nil
}
