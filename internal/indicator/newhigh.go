package indicator

import "taframe/internal/model"

// NewHigh reports, for every bar, whether its close equals the maximum
// close seen so far (expanding window from index 0). Ties count as a
// new high. Output length equals the input length.
func NewHigh(s model.Series) []bool {
	return expand(s.Closes(), func(prefix []float64) bool {
		high := prefix[0]
		for _, c := range prefix[1:] {
			if c > high {
				high = c
			}
		}
		return prefix[len(prefix)-1] == high
	})
}
