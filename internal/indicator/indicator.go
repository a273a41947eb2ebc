// Package indicator provides batch technical indicator calculations over
// bar series.
//
// Every function takes a complete, chronologically ordered model.Series
// and returns a new derived series without touching the input. Derived
// series are right-aligned: the last output element always corresponds
// to the last input bar, and shorter outputs lose elements from the
// front, never the back. A series shorter than the required window
// yields an empty result, never partial windows and never an error.
package indicator

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned (wrapped) when an indicator would divide
// by a zero price: a zero window-start close in PercentChange or a zero
// close while normalizing ATR. Degenerate flat-at-zero series must be
// guarded by the caller.
var ErrDivideByZero = errors.New("division by zero")

// round2 rounds to 2 decimal places. Recursive indicators apply it at
// every step, not just on output; the compounding is intentional and
// part of the numeric contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
