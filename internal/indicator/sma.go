package indicator

import (
	"fmt"

	"taframe/internal/model"
)

// MovingAvg calculates a simple moving average of one bar field over
// sliding windows of lag+1 bars, each value rounded to 2 decimals.
// Output length is len(s)-lag.
func MovingAvg(s model.Series, field model.Field, lag int) ([]float64, error) {
	vals, err := s.Values(field)
	if err != nil {
		return nil, fmt.Errorf("moving avg: %w", err)
	}
	return movingAvg(vals, lag), nil
}

// movingAvg is the scalar-series SMA shared with ATR's smoothing pass.
func movingAvg(vals []float64, lag int) []float64 {
	return roll(vals, lag+1, func(window []float64) float64 {
		return round2(mean(window))
	})
}
