package indicator

import (
	"fmt"

	"taframe/internal/model"
)

// ATR calculates the average true range: the per-bar true range series
// smoothed with a simple moving average of window lag+1. The smoothing
// is a plain SMA, not Wilder's recursion.
//
// True range for the consecutive pair (i-1, i) is
// max(h[i]-l[i], h[i]-c[i-1], l[i]-c[i-1]). With normalize set, each
// true range is divided by c[i] to express it as a fraction of price;
// a zero close then fails with ErrDivideByZero.
//
// Output length is len(s)-1-lag.
func ATR(s model.Series, lag int, normalize bool) ([]float64, error) {
	if len(s) < 2 {
		return nil, nil
	}

	tr := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		cur, prev := s[i], s[i-1]
		r := max(cur.High-cur.Low, cur.High-prev.Close, cur.Low-prev.Close)
		if normalize {
			if cur.Close == 0 {
				return nil, fmt.Errorf("atr: normalize with zero close at bar %d: %w", i, ErrDivideByZero)
			}
			r /= cur.Close
		}
		tr = append(tr, r)
	}

	return movingAvg(tr, lag), nil
}
