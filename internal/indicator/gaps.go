package indicator

import "taframe/internal/model"

// Gaps calculates the overnight gap for each consecutive bar pair:
// open[i] minus close[i-1], rounded to 2 decimals. Output length is
// len(s)-1, aligned from input index 1.
func Gaps(s model.Series) []float64 {
	if len(s) < 2 {
		return nil
	}
	out := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, round2(s[i].Open-s[i-1].Close))
	}
	return out
}
