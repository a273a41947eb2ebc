package indicator

import "taframe/internal/model"

// MACD calculates the MACD histogram over the close price: the MACD
// line (fast EMA minus slow EMA, right-trimmed to equal length) minus a
// signal EMA of that line, every value rounded to 2 decimals.
//
// The signal line is seeded with the first MACD line value rather than
// an average of the first signal values, then updated recursively with
// multiplier 2/(signal+1) from line index signal+1 onward. Callers
// expecting textbook window-average seeding should note the seed is a
// single raw point.
//
// Output length is the signal line length; empty when the series is too
// short for either EMA.
func MACD(s model.Series, slow, fast, signal int) []float64 {
	closes := s.Closes()
	slowEMA := emaVals(closes, slow)
	fastEMA := emaVals(closes, fast)
	if len(slowEMA) == 0 || len(fastEMA) == 0 {
		return nil
	}

	// Align both EMAs to the shorter one before subtracting.
	n := len(slowEMA)
	if len(fastEMA) < n {
		n = len(fastEMA)
	}
	slowEMA = rightTrim(slowEMA, n)
	fastEMA = rightTrim(fastEMA, n)

	line := make([]float64, n)
	for i := range line {
		line[i] = round2(fastEMA[i] - slowEMA[i])
	}

	// Signal EMA of the MACD line, seeded from its first value.
	mult := 2.0 / float64(signal+1)
	prev := line[0]
	sig := make([]float64, 0, n)
	sig = append(sig, prev)
	for i := signal + 1; i < len(line); i++ {
		prev = round2((line[i]-prev)*mult + prev)
		sig = append(sig, prev)
	}

	final := rightTrim(line, len(sig))
	hist := make([]float64, len(sig))
	for i := range hist {
		hist[i] = round2(final[i] - sig[i])
	}
	return hist
}
