package indicator

import "taframe/internal/model"

// RSI calculates the Relative Strength Index over the close price,
// rounded to 2 decimals. Output length is len(s)-lag.
//
// The seed average gain/loss is the arithmetic mean of the first lag
// per-bar gains/losses; every later step applies a fixed 14-period
// Wilder decay, (prev*13 + new)/14, regardless of lag. The decay
// constant is a deliberate policy of this implementation and is not
// parameterized.
//
// A zero average loss (a never-decreasing series) yields RSI = 100
// rather than an error.
func RSI(s model.Series, lag int) []float64 {
	if lag <= 0 || len(s) <= lag {
		return nil
	}

	closes := s.Closes()
	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta >= 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -delta)
		}
	}

	avgGains := wilder(gains, lag)
	avgLosses := wilder(losses, lag)

	out := make([]float64, len(avgGains))
	for i := range out {
		if avgLosses[i] == 0 {
			out[i] = 100
			continue
		}
		rs := avgGains[i] / avgLosses[i]
		out[i] = round2(100 - 100/(1+rs))
	}
	return out
}

// wilder seeds with the mean of the first lag values, then folds the
// rest through the fixed (prev*13 + v)/14 smoothing. The recursion is
// not rounded per step; only the final RSI is.
func wilder(vals []float64, lag int) []float64 {
	sum := 0.0
	for _, v := range vals[:lag] {
		sum += v
	}
	prev := sum / float64(lag)

	out := make([]float64, 0, len(vals)-lag+1)
	out = append(out, prev)
	for _, v := range vals[lag:] {
		prev = (prev*13 + v) / 14
		out = append(out, prev)
	}
	return out
}
