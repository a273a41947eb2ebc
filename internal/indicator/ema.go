package indicator

import (
	"fmt"

	"taframe/internal/model"
)

// EMA calculates an exponential moving average of one bar field.
//
// The first output value is the SMA over the first lag+1 bars; from
// input index lag+1 onward each step applies
//
//	ema = (value - prev) * 2/(lag+1) + prev
//
// rounded to 2 decimals per step. Output length is len(s)-lag.
func EMA(s model.Series, field model.Field, lag int) ([]float64, error) {
	vals, err := s.Values(field)
	if err != nil {
		return nil, fmt.Errorf("ema: %w", err)
	}
	return emaVals(vals, lag), nil
}

// emaVals runs the EMA recursion over a scalar series. Shared with the
// MACD signal line, which is an EMA of the MACD line itself.
func emaVals(vals []float64, lag int) []float64 {
	if lag <= 0 || len(vals) <= lag {
		return nil
	}

	mult := 2.0 / float64(lag+1)
	prev := round2(mean(vals[:lag+1])) // SMA seed

	out := make([]float64, 0, len(vals)-lag)
	out = append(out, prev)
	for i := lag + 1; i < len(vals); i++ {
		prev = round2((vals[i]-prev)*mult + prev)
		out = append(out, prev)
	}
	return out
}
