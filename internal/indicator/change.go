package indicator

import (
	"fmt"

	"taframe/internal/model"
)

// PercentChange calculates the close-to-close percent change over each
// sliding window of lag+1 bars, rounded to 2 decimals. Output length is
// len(s)-lag. A zero close at a window start fails with ErrDivideByZero.
func PercentChange(s model.Series, lag int) ([]float64, error) {
	return rollErr(s, lag+1, func(window []model.Bar) (float64, error) {
		start := window[0].Close
		if start == 0 {
			return 0, fmt.Errorf("percent change: window start close is zero at t=%d: %w", window[0].T, ErrDivideByZero)
		}
		end := window[len(window)-1].Close
		return round2((end - start) / start * 100), nil
	})
}
